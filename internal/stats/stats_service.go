package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-repartos/internal/settings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	minYear  = 2020
	cacheTTL = 60 * time.Second
)

//go:generate mockgen -source=stats_service.go -destination=mock/stats_service_mock.go -package=mock
type Service interface {
	MonthlyStats(ctx context.Context, month, year int) (MonthlyStatsResponse, error)
	MonthOverMonth(ctx context.Context, month, year int) (MonthOverMonthResponse, error)
}

type service struct {
	repo         Repository
	settingsRepo settings.Repository
	rdb          *redis.Client
	group        singleflight.Group
	logger       *zap.Logger
}

func NewService(repo Repository, settingsRepo settings.Repository, rdb *redis.Client) Service {
	return &service{
		repo:         repo,
		settingsRepo: settingsRepo,
		rdb:          rdb,
		logger:       zap.L().Named("stats.service"),
	}
}

// MonthlyStats is read-heavy dashboard data: cached in Redis and collapsed
// with singleflight so a cold cache triggers one database pass.
func (s *service) MonthlyStats(ctx context.Context, month, year int) (MonthlyStatsResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return MonthlyStatsResponse{}, err
	}

	key := fmt.Sprintf("stats:monthly:%04d-%02d", year, month)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var resp MonthlyStatsResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		resp, err := s.computeMonthly(ctx, month, year)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if buf, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, key, buf, cacheTTL).Err(); err != nil {
					s.logger.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return MonthlyStatsResponse{}, err
	}
	return v.(MonthlyStatsResponse), nil
}

func (s *service) MonthOverMonth(ctx context.Context, month, year int) (MonthOverMonthResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return MonthOverMonthResponse{}, err
	}

	prevMonth, prevYear := month-1, year
	if prevMonth == 0 {
		prevMonth, prevYear = 12, year-1
	}

	current, err := s.periodTotals(ctx, month, year)
	if err != nil {
		return MonthOverMonthResponse{}, err
	}
	previous, err := s.periodTotals(ctx, prevMonth, prevYear)
	if err != nil {
		return MonthOverMonthResponse{}, err
	}

	return MonthOverMonthResponse{
		Current:          current,
		Previous:         previous,
		TripsDeltaPct:    pctDelta(float64(current.Trips), float64(previous.Trips)),
		EarningsDeltaPct: pctDelta(current.Earnings, previous.Earnings),
	}, nil
}

func (s *service) computeMonthly(ctx context.Context, month, year int) (MonthlyStatsResponse, error) {
	start, end := monthBounds(month, year)
	aggs, err := s.repo.AggregateByCourier(ctx, start, end)
	if err != nil {
		return MonthlyStatsResponse{}, err
	}

	perTripRate, err := s.perTripRate(ctx)
	if err != nil {
		return MonthlyStatsResponse{}, err
	}

	rows := make([]CourierStats, len(aggs))
	for i, agg := range aggs {
		rows[i] = CourierStats{
			CourierID:   agg.CourierID,
			CourierName: agg.CourierName,
			Trips:       agg.Trips,
			Revenue:     agg.Revenue,
			Earnings:    float64(agg.Trips) * perTripRate,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Earnings > rows[j].Earnings
	})

	return MonthlyStatsResponse{Month: month, Year: year, Rows: rows}, nil
}

func (s *service) periodTotals(ctx context.Context, month, year int) (PeriodTotals, error) {
	monthly, err := s.computeMonthly(ctx, month, year)
	if err != nil {
		return PeriodTotals{}, err
	}

	totals := PeriodTotals{Month: month, Year: year}
	for _, row := range monthly.Rows {
		if row.Trips > 0 {
			totals.ActiveCouriers++
		}
		totals.Trips += row.Trips
		totals.Revenue += row.Revenue
		totals.Earnings += row.Earnings
	}
	return totals, nil
}

func (s *service) perTripRate(ctx context.Context) (float64, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return cfg.PerTripRate, nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	if year < minYear {
		return ErrInvalidYear
	}
	return nil
}

func monthBounds(month, year int) (string, string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// pctDelta follows the reporting convention that growth from nothing is 0,
// not infinity.
func pctDelta(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
