package payroll

import (
	"context"
	"database/sql"
	"testing"

	payrollerrors "go-repartos/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	queried bool

	couriers []CourierRef
	trips    map[string]int
	absences map[string]int

	insertedReport *PayrollReport
	insertedLines  []PayrollReportLine

	findReportsFn    func(ctx context.Context) ([]PayrollReport, error)
	findReportByIDFn func(ctx context.Context, id string) (*PayrollReport, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) ListCouriers(ctx context.Context) ([]CourierRef, error) {
	f.queried = true
	return f.couriers, nil
}
func (f *fakeRepo) CountTripsByCourier(ctx context.Context, start, end string) (map[string]int, error) {
	f.queried = true
	return f.trips, nil
}
func (f *fakeRepo) CountAbsencesByCourier(ctx context.Context, start, end string) (map[string]int, error) {
	f.queried = true
	return f.absences, nil
}
func (f *fakeRepo) InsertReport(ctx context.Context, report *PayrollReport) error {
	f.insertedReport = report
	return nil
}
func (f *fakeRepo) InsertLines(ctx context.Context, lines []PayrollReportLine) error {
	f.insertedLines = lines
	return nil
}
func (f *fakeRepo) FindReports(ctx context.Context) ([]PayrollReport, error) {
	return f.findReportsFn(ctx)
}
func (f *fakeRepo) FindReportByID(ctx context.Context, id string) (*PayrollReport, error) {
	return f.findReportByIDFn(ctx, id)
}

func ptr(v float64) *float64 { return &v }

func validConfig() PayrollConfig {
	return PayrollConfig{BaseSalary: ptr(100), PerTripRate: ptr(20), AbsencePenalty: ptr(50)}
}

func TestService_Calculate_PayFormula(t *testing.T) {
	courierID := uuid.New().String()
	repo := &fakeRepo{
		couriers: []CourierRef{{ID: courierID, Name: "Ana"}},
		trips:    map[string]int{courierID: 3},
		absences: map[string]int{courierID: 1},
	}
	svc := NewService(repo, nil)

	resp, err := svc.Calculate(context.Background(), CalculateRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		Config:    validConfig(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	line := resp.Lines[0]
	assert.Equal(t, 3, line.Trips)
	assert.Equal(t, 60.0, line.TripPay)
	assert.Equal(t, 160.0, line.Gross)
	assert.Equal(t, 50.0, line.Deductions)
	assert.Equal(t, 110.0, line.Net)
}

func TestService_Calculate_ZeroActivityCourierGetsBase(t *testing.T) {
	courierID := uuid.New().String()
	repo := &fakeRepo{
		couriers: []CourierRef{{ID: courierID, Name: "Bruno"}},
		trips:    map[string]int{},
		absences: map[string]int{},
	}
	svc := NewService(repo, nil)

	resp, err := svc.Calculate(context.Background(), CalculateRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		Config:    validConfig(),
	})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 100.0, resp.Lines[0].Net)
	assert.Zero(t, resp.Lines[0].Trips)
}

func TestService_Calculate_NegativeNetPassesThrough(t *testing.T) {
	courierID := uuid.New().String()
	repo := &fakeRepo{
		couriers: []CourierRef{{ID: courierID, Name: "Clara"}},
		trips:    map[string]int{},
		absences: map[string]int{courierID: 5},
	}
	svc := NewService(repo, nil)

	resp, err := svc.Calculate(context.Background(), CalculateRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		Config:    validConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, -150.0, resp.Lines[0].Net)
}

func TestService_Calculate_ValidatesBeforeQuerying(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	cases := []struct {
		name string
		req  CalculateRequest
		want error
	}{
		{
			"bad date format",
			CalculateRequest{StartDate: "03/01/2026", EndDate: "2026-03-31", Config: validConfig()},
			payrollerrors.ErrInvalidDate,
		},
		{
			"start after end",
			CalculateRequest{StartDate: "2026-04-01", EndDate: "2026-03-31", Config: validConfig()},
			payrollerrors.ErrInvalidDateRange,
		},
		{
			"negative config",
			CalculateRequest{
				StartDate: "2026-03-01", EndDate: "2026-03-31",
				Config: PayrollConfig{BaseSalary: ptr(-1), PerTripRate: ptr(20), AbsencePenalty: ptr(50)},
			},
			payrollerrors.ErrInvalidConfig,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Calculate(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
			assert.False(t, repo.queried)
		})
	}
}

func TestService_SaveReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	courierID := uuid.New().String()
	repo := &fakeRepo{
		couriers: []CourierRef{{ID: courierID, Name: "Ana"}},
		trips:    map[string]int{courierID: 2},
		absences: map[string]int{},
	}
	svc := NewService(repo, db)

	resp, err := svc.SaveReport(context.Background(), CalculateRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		Config:    validConfig(),
	}, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ReportID)

	require.NotNil(t, repo.insertedReport)
	assert.Equal(t, "admin", repo.insertedReport.GeneratedBy)
	require.Len(t, repo.insertedLines, 1)
	assert.Equal(t, repo.insertedReport.ID, repo.insertedLines[0].ReportID)
	assert.Equal(t, 140.0, repo.insertedLines[0].Net)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetReportByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findReportByIDFn: func(ctx context.Context, id string) (*PayrollReport, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, nil)

	_, err := svc.GetReportByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, payrollerrors.ErrReportNotFound)
}
