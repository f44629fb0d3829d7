package attendance

import (
	"context"
	"time"

	attendanceerrors "go-repartos/internal/attendance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	ListToday(ctx context.Context) ([]AttendanceResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		now:    time.Now,
		logger: zap.L().Named("attendance.service"),
	}
}

// Upsert records today's punches for a courier. Re-sending the same courier
// overwrites the existing row for the day.
func (s *service) Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error) {
	courierID, err := uuid.Parse(req.CourierID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidCourierID
	}

	exists, err := s.repo.CourierExists(ctx, req.CourierID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !exists {
		return AttendanceResponse{}, attendanceerrors.ErrCourierNotFound
	}

	entry := NormalizeTime(req.EntryTime)
	exit := NormalizeTime(req.ExitTime)

	status := DeriveStatus(entry)
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
		}
		status = *req.Status
	}

	today := s.today()
	row := &Attendance{
		ID:          uuid.New(),
		CourierID:   courierID,
		Date:        today,
		EntryTime:   entry,
		ExitTime:    exit,
		Status:      status,
		Observation: req.Observation,
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		s.logger.Error("attendance upsert failed", zap.String("courier_id", req.CourierID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance recorded",
		zap.String("courier_id", req.CourierID),
		zap.String("status", status),
	)
	return AttendanceResponse{
		CourierID:   req.CourierID,
		Date:        today.Format("2006-01-02"),
		EntryTime:   entry,
		ExitTime:    exit,
		Status:      status,
		Observation: req.Observation,
	}, nil
}

// ListToday returns every courier; those without a stored row come back as
// synthesized absences that are never persisted.
func (s *service) ListToday(ctx context.Context) ([]AttendanceResponse, error) {
	today := s.today()
	rows, err := s.repo.ListDayRoster(ctx, today)
	if err != nil {
		return nil, err
	}

	date := today.Format("2006-01-02")
	res := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		resp := AttendanceResponse{
			CourierID:   row.CourierID,
			CourierName: row.CourierName,
			Date:        date,
			Status:      StatusAbsent,
		}
		if row.Status != nil {
			resp.EntryTime = row.EntryTime
			resp.ExitTime = row.ExitTime
			resp.Status = *row.Status
			if row.Observation != nil {
				resp.Observation = *row.Observation
			}
		}
		res[i] = resp
	}
	return res, nil
}

func (s *service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
