package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	payrollerrors "go-repartos/internal/payroll/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, req CalculateRequest) (CalculateResponse, error)
	SaveReport(ctx context.Context, req CalculateRequest, actor string) (SaveReportResponse, error)
	GetReports(ctx context.Context) ([]ReportSummary, error)
	GetReportByID(ctx context.Context, id string) (ReportDetail, error)
}

type service struct {
	repo   Repository
	sqlDB  *sql.DB
	logger *zap.Logger
}

func NewService(repo Repository, sqlDB *sql.DB) Service {
	return &service{
		repo:   repo,
		sqlDB:  sqlDB,
		logger: zap.L().Named("payroll.service"),
	}
}

// Calculate builds one payroll line per courier over the inclusive range.
// Everything is validated before the first query runs.
func (s *service) Calculate(ctx context.Context, req CalculateRequest) (CalculateResponse, error) {
	if _, _, err := parseRange(req.StartDate, req.EndDate); err != nil {
		return CalculateResponse{}, err
	}
	if err := validateConfig(req.Config); err != nil {
		return CalculateResponse{}, err
	}

	lines, err := s.buildLines(ctx, req)
	if err != nil {
		return CalculateResponse{}, err
	}

	return CalculateResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Lines:     lines,
	}, nil
}

// SaveReport recomputes the period and persists the snapshot with its lines
// in one transaction.
func (s *service) SaveReport(ctx context.Context, req CalculateRequest, actor string) (SaveReportResponse, error) {
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return SaveReportResponse{}, err
	}
	if err := validateConfig(req.Config); err != nil {
		return SaveReportResponse{}, err
	}

	lines, err := s.buildLines(ctx, req)
	if err != nil {
		return SaveReportResponse{}, err
	}

	report := &PayrollReport{
		ID:             uuid.New(),
		PeriodStart:    start,
		PeriodEnd:      end,
		BaseSalary:     *req.Config.BaseSalary,
		PerTripRate:    *req.Config.PerTripRate,
		AbsencePenalty: *req.Config.AbsencePenalty,
		GeneratedBy:    actor,
	}

	entityLines := make([]PayrollReportLine, len(lines))
	for i, line := range lines {
		courierID, err := uuid.Parse(line.CourierID)
		if err != nil {
			return SaveReportResponse{}, err
		}
		entityLines[i] = PayrollReportLine{
			ID:          uuid.New(),
			ReportID:    report.ID,
			CourierID:   courierID,
			CourierName: line.CourierName,
			Trips:       line.Trips,
			Absences:    line.Absences,
			TripPay:     line.TripPay,
			Gross:       line.Gross,
			Deductions:  line.Deductions,
			Net:         line.Net,
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return SaveReportResponse{}, err
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)
	if err := txRepo.InsertReport(ctx, report); err != nil {
		s.logger.Error("insert payroll report failed", zap.Error(err))
		return SaveReportResponse{}, err
	}
	if err := txRepo.InsertLines(ctx, entityLines); err != nil {
		s.logger.Error("insert payroll lines failed", zap.String("report_id", report.ID.String()), zap.Error(err))
		return SaveReportResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SaveReportResponse{}, err
	}

	s.logger.Info("payroll report saved",
		zap.String("report_id", report.ID.String()),
		zap.String("period_start", req.StartDate),
		zap.String("period_end", req.EndDate),
		zap.Int("lines", len(entityLines)),
	)
	return SaveReportResponse{ReportID: report.ID.String()}, nil
}

func (s *service) GetReports(ctx context.Context) ([]ReportSummary, error) {
	reports, err := s.repo.FindReports(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]ReportSummary, len(reports))
	for i, r := range reports {
		res[i] = mapToSummary(r)
	}
	return res, nil
}

func (s *service) GetReportByID(ctx context.Context, id string) (ReportDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ReportDetail{}, payrollerrors.ErrInvalidReportID
	}

	report, err := s.repo.FindReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportDetail{}, payrollerrors.ErrReportNotFound
		}
		return ReportDetail{}, err
	}

	lines := make([]PayrollLine, len(report.Lines))
	for i, line := range report.Lines {
		lines[i] = PayrollLine{
			CourierID:   line.CourierID.String(),
			CourierName: line.CourierName,
			Trips:       line.Trips,
			Absences:    line.Absences,
			TripPay:     line.TripPay,
			Gross:       line.Gross,
			Deductions:  line.Deductions,
			Net:         line.Net,
		}
	}

	return ReportDetail{
		ReportSummary:  mapToSummary(*report),
		BaseSalary:     report.BaseSalary,
		PerTripRate:    report.PerTripRate,
		AbsencePenalty: report.AbsencePenalty,
		Lines:          lines,
	}, nil
}

// buildLines runs the aggregation queries and applies the pay formula. The
// net is intentionally unclamped; heavy absence can push it negative.
func (s *service) buildLines(ctx context.Context, req CalculateRequest) ([]PayrollLine, error) {
	couriers, err := s.repo.ListCouriers(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := s.repo.CountTripsByCourier(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	absences, err := s.repo.CountAbsencesByCourier(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	base := *req.Config.BaseSalary
	perTrip := *req.Config.PerTripRate
	penalty := *req.Config.AbsencePenalty

	lines := make([]PayrollLine, len(couriers))
	for i, c := range couriers {
		tripCount := trips[c.ID]
		absenceCount := absences[c.ID]

		tripPay := float64(tripCount) * perTrip
		gross := base + tripPay
		deductions := float64(absenceCount) * penalty

		lines[i] = PayrollLine{
			CourierID:   c.ID,
			CourierName: c.Name,
			Trips:       tripCount,
			Absences:    absenceCount,
			TripPay:     tripPay,
			Gross:       gross,
			Deductions:  deductions,
			Net:         gross - deductions,
		}
	}
	return lines, nil
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDate
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func validateConfig(cfg PayrollConfig) error {
	if cfg.BaseSalary == nil || cfg.PerTripRate == nil || cfg.AbsencePenalty == nil {
		return payrollerrors.ErrInvalidConfig
	}
	if *cfg.BaseSalary < 0 || *cfg.PerTripRate < 0 || *cfg.AbsencePenalty < 0 {
		return payrollerrors.ErrInvalidConfig
	}
	return nil
}

func mapToSummary(r PayrollReport) ReportSummary {
	return ReportSummary{
		ID:          r.ID.String(),
		PeriodStart: r.PeriodStart.Format(dateLayout),
		PeriodEnd:   r.PeriodEnd.Format(dateLayout),
		GeneratedBy: r.GeneratedBy,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}
