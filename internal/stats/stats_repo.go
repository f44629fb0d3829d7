package stats

import (
	"context"

	"gorm.io/gorm"
)

// CourierAgg is one courier's finalized-delivery aggregate over a range.
type CourierAgg struct {
	CourierID   string
	CourierName string
	Trips       int
	Revenue     float64
}

//go:generate mockgen -source=stats_repo.go -destination=mock/stats_repo_mock.go -package=mock
type Repository interface {
	AggregateByCourier(ctx context.Context, start, end string) ([]CourierAgg, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// AggregateByCourier drives from couriers so inactive ones still appear
// with zero trips.
func (r *repository) AggregateByCourier(ctx context.Context, start, end string) ([]CourierAgg, error) {
	var rows []CourierAgg
	err := r.db.WithContext(ctx).
		Table("couriers").
		Select(`couriers.id::text AS courier_id, couriers.name AS courier_name,
			COUNT(deliveries.id) AS trips,
			COALESCE(SUM(deliveries.total_amount), 0) AS revenue`).
		Joins(`LEFT JOIN deliveries ON deliveries.courier_id = couriers.id
			AND deliveries.status = 'FINALIZED'
			AND deliveries.creation_date BETWEEN ? AND ?`, start, end).
		Group("couriers.id, couriers.name").
		Scan(&rows).Error
	return rows, err
}
