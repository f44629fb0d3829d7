package courier

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=courier_repo.go -destination=mock/courier_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, courier *Courier) error
	FindAll(ctx context.Context) ([]Courier, error)
	FindByID(ctx context.Context, id string) (*Courier, error)
	UpdateName(ctx context.Context, id, name string) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, courier *Courier) error {
	return r.db.WithContext(ctx).Create(courier).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Courier, error) {
	var couriers []Courier
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&couriers).Error
	return couriers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Courier, error) {
	var courier Courier
	err := r.db.WithContext(ctx).
		First(&courier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &courier, nil
}

// UpdateName reports rows affected; zero is not conclusive of absence and is
// disambiguated by the service.
func (r *repository) UpdateName(ctx context.Context, id, name string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Courier{}).
		Where("id = ?", id).
		Update("name", name)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Courier{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&Courier{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
