package courier

import (
	"context"
	"errors"
	"testing"

	couriererrors "go-repartos/internal/courier/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, c *Courier) error
	findAllFn    func(ctx context.Context) ([]Courier, error)
	findByIDFn   func(ctx context.Context, id string) (*Courier, error)
	updateNameFn func(ctx context.Context, id, name string) (int64, error)
	existsFn     func(ctx context.Context, id string) (bool, error)
	deleteFn     func(ctx context.Context, id string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, c *Courier) error { return f.createFn(ctx, c) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Courier, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Courier, error) {
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
	var saved Courier
	repo := &fakeRepo{
		createFn: func(ctx context.Context, c *Courier) error { saved = *c; return nil },
	}
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), CreateCourierRequest{Name: "  María López "})
	assert.NoError(t, err)
	assert.Equal(t, "María López", resp.Name)
	assert.Equal(t, saved.ID.String(), resp.ID)
}

func TestService_Create_InvalidName(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), CreateCourierRequest{Name: "R2-D2"})
	assert.ErrorIs(t, err, couriererrors.ErrInvalidName)

	_, err = svc.Create(context.Background(), CreateCourierRequest{Name: "   "})
	assert.ErrorIs(t, err, couriererrors.ErrInvalidName)
}

func TestService_Update_Disambiguation(t *testing.T) {
	id := uuid.New().String()

	// zero rows affected + row absent -> not found
	repo := &fakeRepo{
		updateNameFn: func(ctx context.Context, id, name string) (int64, error) { return 0, nil },
		existsFn:     func(ctx context.Context, id string) (bool, error) { return false, nil },
	}
	_, err := NewService(repo).Update(context.Background(), id, UpdateCourierRequest{Name: "Pedro"})
	assert.ErrorIs(t, err, couriererrors.ErrCourierNotFound)

	// zero rows affected + row present -> unchanged, still success
	repo.existsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	resp, err := NewService(repo).Update(context.Background(), id, UpdateCourierRequest{Name: "Pedro"})
	assert.NoError(t, err)
	assert.Equal(t, "Pedro", resp.Name)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id string) (int64, error) { return 0, nil },
	}
	err := NewService(repo).Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, couriererrors.ErrCourierNotFound)
}

func TestService_GetByID_MapsRecordNotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Courier, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	_, err := NewService(repo).GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, couriererrors.ErrCourierNotFound)
}

func TestService_GetAll_PropagatesStorageError(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]Courier, error) { return nil, boom },
	}
	_, err := NewService(repo).GetAll(context.Background())
	assert.ErrorIs(t, err, boom)
}
