package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// CourierRef is the minimal courier projection payroll needs.
type CourierRef struct {
	ID   string
	Name string
}

type countRow struct {
	CourierID string
	Total     int
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListCouriers(ctx context.Context) ([]CourierRef, error)
	CountTripsByCourier(ctx context.Context, start, end string) (map[string]int, error)
	CountAbsencesByCourier(ctx context.Context, start, end string) (map[string]int, error)
	InsertReport(ctx context.Context, report *PayrollReport) error
	InsertLines(ctx context.Context, lines []PayrollReportLine) error
	FindReports(ctx context.Context) ([]PayrollReport, error)
	FindReportByID(ctx context.Context, id string) (*PayrollReport, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

func (r *repository) ListCouriers(ctx context.Context) ([]CourierRef, error) {
	var refs []CourierRef
	err := r.db.WithContext(ctx).
		Table("couriers").
		Select("id::text AS id, name").
		Order("name ASC").
		Scan(&refs).Error
	return refs, err
}

// CountTripsByCourier counts finalized deliveries per courier; the range is
// inclusive on both ends.
func (r *repository) CountTripsByCourier(ctx context.Context, start, end string) (map[string]int, error) {
	var rows []countRow
	err := r.db.WithContext(ctx).
		Table("deliveries").
		Select("courier_id::text AS courier_id, COUNT(*) AS total").
		Where("status = ? AND creation_date BETWEEN ? AND ?", "FINALIZED", start, end).
		Group("courier_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *repository) CountAbsencesByCourier(ctx context.Context, start, end string) (map[string]int, error) {
	var rows []countRow
	err := r.db.WithContext(ctx).
		Table("attendances").
		Select("courier_id::text AS courier_id, COUNT(*) AS total").
		Where("status = ? AND date BETWEEN ? AND ?", "ABSENT", start, end).
		Group("courier_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(rows), nil
}

func (r *repository) InsertReport(ctx context.Context, report *PayrollReport) error {
	query := `
        INSERT INTO payroll_reports (
            id, period_start, period_end, base_salary, per_trip_rate,
            absence_penalty, generated_by, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		report.ID,
		report.PeriodStart.Format("2006-01-02"), report.PeriodEnd.Format("2006-01-02"),
		report.BaseSalary, report.PerTripRate, report.AbsencePenalty, report.GeneratedBy,
	)
	return err
}

func (r *repository) InsertLines(ctx context.Context, lines []PayrollReportLine) error {
	query := `
        INSERT INTO payroll_report_lines (
            id, report_id, courier_id, courier_name, trips, absences,
            trip_pay, gross, deductions, net
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	exec := r.execer()
	for _, line := range lines {
		_, err := exec.ExecContext(
			ctx, query,
			line.ID, line.ReportID, line.CourierID, line.CourierName,
			line.Trips, line.Absences, line.TripPay, line.Gross, line.Deductions, line.Net,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) FindReports(ctx context.Context) ([]PayrollReport, error) {
	var reports []PayrollReport
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *repository) FindReportByID(ctx context.Context, id string) (*PayrollReport, error) {
	var report PayrollReport
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

func toCountMap(rows []countRow) map[string]int {
	m := make(map[string]int, len(rows))
	for _, row := range rows {
		m[row.CourierID] = row.Total
	}
	return m
}
