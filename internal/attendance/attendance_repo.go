package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DayRosterRow is one courier in the daily roster. Attendance columns are
// nil when the courier has no row for the day.
type DayRosterRow struct {
	CourierID   string
	CourierName string
	EntryTime   *string
	ExitTime    *string
	Status      *string
	Observation *string
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, a *Attendance) error
	ListDayRoster(ctx context.Context, day time.Time) ([]DayRosterRow, error)
	CourierExists(ctx context.Context, courierID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "courier_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_time", "exit_time", "status", "observation", "updated_at"}),
	}).Create(a).Error
}

// ListDayRoster drives the query from couriers so absentees without a row
// still show up.
func (r *repository) ListDayRoster(ctx context.Context, day time.Time) ([]DayRosterRow, error) {
	var rows []DayRosterRow
	err := r.db.WithContext(ctx).
		Table("couriers").
		Select(`couriers.id AS courier_id, couriers.name AS courier_name,
			attendances.entry_time, attendances.exit_time,
			attendances.status, attendances.observation`).
		Joins("LEFT JOIN attendances ON attendances.courier_id = couriers.id AND attendances.date = ?",
			day.Format("2006-01-02")).
		Order("couriers.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CourierExists(ctx context.Context, courierID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("couriers").Where("id = ?", courierID).Count(&count).Error
	return count > 0, err
}
