package seller

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=seller_repo.go -destination=mock/seller_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *Seller) error
	FindAll(ctx context.Context) ([]Seller, error)
	FindByID(ctx context.Context, id string) (*Seller, error)
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

func (r *repository) Create(ctx context.Context, s *Seller) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Seller, error) {
	var sellers []Seller
	err := r.db.WithContext(ctx).Order("name ASC").Find(&sellers).Error
	return sellers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Seller, error) {
	var s Seller
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) UpdateName(ctx context.Context, id, name string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Seller{}).
		Where("id = ? AND name <> ?", id, name).
		Update("name", name)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Seller{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Seller{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
