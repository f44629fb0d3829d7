package seller

import (
	"context"
	"testing"

	sellererrors "go-repartos/internal/seller/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, s *Seller) error
	findAllFn    func(ctx context.Context) ([]Seller, error)
	findByIDFn   func(ctx context.Context, id string) (*Seller, error)
	updateNameFn func(ctx context.Context, id, name string) (int64, error)
	existsFn     func(ctx context.Context, id string) (bool, error)
	deleteFn     func(ctx context.Context, id string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, s *Seller) error { return f.createFn(ctx, s) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Seller, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Seller, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) UpdateName(ctx context.Context, id, name string) (int64, error) {
	return f.updateNameFn(ctx, id, name)
}
func (f *fakeRepo) Exists(ctx context.Context, id string) (bool, error) {
	return f.existsFn(ctx, id)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) (int64, error) {
	return f.deleteFn(ctx, id)
}

func TestService_Create(t *testing.T) {
	var saved Seller
	repo := &fakeRepo{
		createFn: func(ctx context.Context, s *Seller) error { saved = *s; return nil },
	}
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), CreateSellerRequest{Name: "  Ana Torres "})
	assert.NoError(t, err)
	assert.Equal(t, "Ana Torres", resp.Name)
	assert.Equal(t, saved.ID.String(), resp.ID)
}

func TestService_Create_InvalidName(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), CreateSellerRequest{Name: "Mayorista 24/7"})
	assert.ErrorIs(t, err, sellererrors.ErrInvalidName)

	_, err = svc.Create(context.Background(), CreateSellerRequest{Name: "   "})
	assert.ErrorIs(t, err, sellererrors.ErrInvalidName)
}

func TestService_Update_Disambiguation(t *testing.T) {
	id := uuid.New().String()

	// zero rows affected + row absent -> not found
	repo := &fakeRepo{
		updateNameFn: func(ctx context.Context, id, name string) (int64, error) { return 0, nil },
		existsFn:     func(ctx context.Context, id string) (bool, error) { return false, nil },
	}
	_, err := NewService(repo).Update(context.Background(), id, UpdateSellerRequest{Name: "Lucía"})
	assert.ErrorIs(t, err, sellererrors.ErrSellerNotFound)

	// zero rows affected + row present -> unchanged, still success
	repo.existsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	resp, err := NewService(repo).Update(context.Background(), id, UpdateSellerRequest{Name: "Lucía"})
	assert.NoError(t, err)
	assert.Equal(t, "Lucía", resp.Name)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id string) (int64, error) { return 0, nil },
	}
	err := NewService(repo).Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, sellererrors.ErrSellerNotFound)
}

func TestService_GetByID_MapsRecordNotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Seller, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	_, err := NewService(repo).GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, sellererrors.ErrSellerNotFound)
}
