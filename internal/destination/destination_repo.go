package destination

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=destination_repo.go -destination=mock/destination_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, d *Destination) error
	FindAll(ctx context.Context) ([]Destination, error)
	FindByID(ctx context.Context, id string) (*Destination, error)
	Update(ctx context.Context, id, place, address string) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Destination, error) {
	var destinations []Destination
	err := r.db.WithContext(ctx).Order("place ASC").Find(&destinations).Error
	return destinations, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Destination, error) {
	var d Destination
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Update(ctx context.Context, id, place, address string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Destination{}).
		Where("id = ? AND (place <> ? OR address <> ?)", id, place, address).
		Updates(map[string]interface{}{"place": place, "address": address})
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Destination{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Destination{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
