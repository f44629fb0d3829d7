package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}
