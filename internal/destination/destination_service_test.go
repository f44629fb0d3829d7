package destination

import (
	"context"
	"testing"

	destinationerrors "go-repartos/internal/destination/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn   func(ctx context.Context, d *Destination) error
	findAllFn  func(ctx context.Context) ([]Destination, error)
	findByIDFn func(ctx context.Context, id string) (*Destination, error)
	updateFn   func(ctx context.Context, id, place, address string) (int64, error)
	existsFn   func(ctx context.Context, id string) (bool, error)
	deleteFn   func(ctx context.Context, id string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, d *Destination) error { return f.createFn(ctx, d) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Destination, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Destination, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, id, place, address string) (int64, error) {
	return f.updateFn(ctx, id, place, address)
}
func (f *fakeRepo) Exists(ctx context.Context, id string) (bool, error) {
	return f.existsFn(ctx, id)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) (int64, error) {
	return f.deleteFn(ctx, id)
}

func TestService_Create(t *testing.T) {
	var saved Destination
	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *Destination) error { saved = *d; return nil },
	}
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), CreateDestinationRequest{
		Place:   "  Mercado Central ",
		Address: " Av. Belgrano 950 ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Mercado Central", resp.Place)
	assert.Equal(t, "Av. Belgrano 950", resp.Address)
	assert.Equal(t, saved.ID.String(), resp.ID)
}

func TestService_Create_RequiresPlaceAndAddress(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), CreateDestinationRequest{Place: "   ", Address: "Av. Belgrano 950"})
	assert.ErrorIs(t, err, destinationerrors.ErrInvalidPlace)

	_, err = svc.Create(context.Background(), CreateDestinationRequest{Place: "Mercado Central", Address: "  "})
	assert.ErrorIs(t, err, destinationerrors.ErrInvalidAddress)
}

func TestService_Update_Disambiguation(t *testing.T) {
	id := uuid.New().String()
	req := UpdateDestinationRequest{Place: "Depósito Norte", Address: "Ruta 9 km 12"}

	// zero rows affected + row absent -> not found
	repo := &fakeRepo{
		updateFn: func(ctx context.Context, id, place, address string) (int64, error) { return 0, nil },
		existsFn: func(ctx context.Context, id string) (bool, error) { return false, nil },
	}
	_, err := NewService(repo).Update(context.Background(), id, req)
	assert.ErrorIs(t, err, destinationerrors.ErrDestinationNotFound)

	// zero rows affected + row present -> unchanged, still success
	repo.existsFn = func(ctx context.Context, id string) (bool, error) { return true, nil }
	resp, err := NewService(repo).Update(context.Background(), id, req)
	assert.NoError(t, err)
	assert.Equal(t, "Depósito Norte", resp.Place)
	assert.Equal(t, "Ruta 9 km 12", resp.Address)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id string) (int64, error) { return 0, nil },
	}
	err := NewService(repo).Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, destinationerrors.ErrDestinationNotFound)
}

func TestService_GetByID_MapsRecordNotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Destination, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	_, err := NewService(repo).GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, destinationerrors.ErrDestinationNotFound)
}
