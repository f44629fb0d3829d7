package paymentmethod

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=paymentmethod_repo.go -destination=mock/paymentmethod_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, pm *PaymentMethod) error
	FindAll(ctx context.Context) ([]PaymentMethod, error)
	FindByID(ctx context.Context, id string) (*PaymentMethod, error)
	UpdateName(ctx context.Context, id, name string) (int64, error)
	SetActive(ctx context.Context, id string, active bool) (int64, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, pm *PaymentMethod) error {
	return r.db.WithContext(ctx).Create(pm).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	err := r.db.WithContext(ctx).Order("name ASC").Find(&methods).Error
	return methods, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PaymentMethod, error) {
	var pm PaymentMethod
	if err := r.db.WithContext(ctx).First(&pm, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pm, nil
}

func (r *repository) UpdateName(ctx context.Context, id, name string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&PaymentMethod{}).
		Where("id = ? AND name <> ?", id, name).
		Update("name", name)
	return res.RowsAffected, res.Error
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) (int64, error) {
	res := r.db.WithContext(ctx).Model(&PaymentMethod{}).
		Where("id = ? AND active <> ?", id, active).
		Update("active", active)
	return res.RowsAffected, res.Error
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PaymentMethod{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&PaymentMethod{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
