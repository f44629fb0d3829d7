package delivery

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=delivery_repo.go -destination=mock/delivery_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Insert(ctx context.Context, d *Delivery) error
	Finalize(ctx context.Context, id, arrivalTime string) (int64, error)
	FindByID(ctx context.Context, id string) (*Delivery, error)
	ListJoined(ctx context.Context) ([]JoinedRow, error)
	RefExists(ctx context.Context, table, id string) (bool, error)
}

// JoinedRow is the listing projection with reference names resolved.
type JoinedRow struct {
	ID                string
	Ticket            string
	DestinationPlace  string
	CourierName       string
	SellerName        string
	PaymentMethodName string
	CreationDate      string
	DepartureTime     string
	ArrivalTime       *string
	TotalAmount       float64
	Status            string
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

func (r *repository) Insert(ctx context.Context, d *Delivery) error {
	query := `
        INSERT INTO deliveries (
            id, ticket, destination_id, courier_id, seller_id, payment_method_id,
            creation_date, departure_time, total_amount, status, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
    `
	_, err := r.execer().ExecContext(
		ctx, query,
		d.ID, d.Ticket, d.DestinationID, d.CourierID, d.SellerID, d.PaymentMethodID,
		d.CreationDate.Format("2006-01-02"), d.DepartureTime, d.TotalAmount, d.Status,
	)
	return err
}

// Finalize is a single conditional update; the caller disambiguates a
// zero-row result.
func (r *repository) Finalize(ctx context.Context, id, arrivalTime string) (int64, error) {
	query := `
        UPDATE deliveries
        SET status = $2, arrival_time = $3, updated_at = NOW()
        WHERE id = $1 AND status = $4
    `
	res, err := r.execer().ExecContext(ctx, query, id, StatusFinalized, arrivalTime, StatusInProgress)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) FindByID(ctx context.Context, id string) (*Delivery, error) {
	var d Delivery
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListJoined(ctx context.Context) ([]JoinedRow, error) {
	var rows []JoinedRow
	err := r.db.WithContext(ctx).
		Table("deliveries").
		Select(`deliveries.id::text AS id, deliveries.ticket,
			destinations.place AS destination_place,
			couriers.name AS courier_name,
			sellers.name AS seller_name,
			payment_methods.name AS payment_method_name,
			to_char(deliveries.creation_date, 'YYYY-MM-DD') AS creation_date,
			deliveries.departure_time, deliveries.arrival_time,
			deliveries.total_amount, deliveries.status`).
		Joins("JOIN destinations ON destinations.id = deliveries.destination_id").
		Joins("JOIN couriers ON couriers.id = deliveries.courier_id").
		Joins("JOIN sellers ON sellers.id = deliveries.seller_id").
		Joins("JOIN payment_methods ON payment_methods.id = deliveries.payment_method_id").
		Order("deliveries.creation_date DESC, deliveries.departure_time DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RefExists(ctx context.Context, table, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
