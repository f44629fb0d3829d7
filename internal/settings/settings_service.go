package settings

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (SettingsResponse, bool, error)
	Save(ctx context.Context, req SaveSettingsRequest) (SettingsResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{
		repo:   repo,
		rdb:    rdb,
		logger: zap.L().Named("settings.service"),
	}
}

// Get returns the configured payroll amounts. The second result reports
// whether the row was missing and zero defaults were returned instead.
func (s *service) Get(ctx context.Context) (SettingsResponse, bool, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("no settings row, using defaults")
			return SettingsResponse{}, true, nil
		}
		return SettingsResponse{}, false, err
	}
	return mapToResponse(*cfg), false, nil
}

func (s *service) Save(ctx context.Context, req SaveSettingsRequest) (SettingsResponse, error) {
	if *req.BaseSalary < 0 || *req.PerTripRate < 0 || *req.AbsencePenalty < 0 {
		return SettingsResponse{}, ErrNegativeAmount
	}

	cfg := &Settings{
		BaseSalary:     *req.BaseSalary,
		PerTripRate:    *req.PerTripRate,
		AbsencePenalty: *req.AbsencePenalty,
	}
	if err := s.repo.Save(ctx, cfg); err != nil {
		s.logger.Error("save settings failed", zap.Error(err))
		return SettingsResponse{}, err
	}

	s.invalidateStatsCache(ctx)

	s.logger.Info("settings saved",
		zap.Float64("base_salary", cfg.BaseSalary),
		zap.Float64("per_trip_rate", cfg.PerTripRate),
		zap.Float64("absence_penalty", cfg.AbsencePenalty),
	)
	return mapToResponse(*cfg), nil
}

// invalidateStatsCache drops cached monthly stats since earnings depend on
// the per-trip rate. Cache misses repopulate lazily, so failures here are
// logged and ignored.
func (s *service) invalidateStatsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	iter := s.rdb.Scan(ctx, 0, "stats:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn("stats cache invalidation failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("stats cache scan failed", zap.Error(err))
	}
}

func mapToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		BaseSalary:     s.BaseSalary,
		PerTripRate:    s.PerTripRate,
		AbsencePenalty: s.AbsencePenalty,
	}
}
