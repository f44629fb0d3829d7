package paymentmethod

import (
	"context"
	"testing"

	paymentmethoderrors "go-repartos/internal/paymentmethod/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn    func(ctx context.Context, pm *PaymentMethod) error
	findAllFn   func(ctx context.Context) ([]PaymentMethod, error)
	findByIDFn  func(ctx context.Context, id string) (*PaymentMethod, error)
	updateNameFn func(ctx context.Context, id, name string) (int64, error)
	setActiveFn  func(ctx context.Context, id string, active bool) (int64, error)
	existsFn    func(ctx context.Context, id string) (bool, error)
	deleteFn    func(ctx context.Context, id string) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, pm *PaymentMethod) error { return f.createFn(ctx, pm) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]PaymentMethod, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*PaymentMethod, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) UpdateName(ctx context.Context, id, name string) (int64, error) {
	return f.updateNameFn(ctx, id, name)
}
func (f *fakeRepo) SetActive(ctx context.Context, id string, active bool) (int64, error) {
	return f.setActiveFn(ctx, id, active)
}
func (f *fakeRepo) Exists(ctx context.Context, id string) (bool, error) {
	return f.existsFn(ctx, id)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) (int64, error) {
	return f.deleteFn(ctx, id)
}

func TestService_SetActive_NotFound(t *testing.T) {
	repo := &fakeRepo{
		setActiveFn: func(ctx context.Context, id string, active bool) (int64, error) { return 0, nil },
		existsFn:    func(ctx context.Context, id string) (bool, error) { return false, nil },
	}
	_, err := NewService(repo).SetActive(context.Background(), uuid.New().String(), false)
	assert.ErrorIs(t, err, paymentmethoderrors.ErrPaymentMethodNotFound)
}

func TestService_SetActive_AlreadyInState(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{
		setActiveFn: func(ctx context.Context, id string, active bool) (int64, error) { return 0, nil },
		existsFn:    func(ctx context.Context, id string) (bool, error) { return true, nil },
		findByIDFn: func(ctx context.Context, _ string) (*PaymentMethod, error) {
			return &PaymentMethod{ID: id, Name: "Efectivo", Active: false}, nil
		},
	}
	resp, err := NewService(repo).SetActive(context.Background(), id.String(), false)
	assert.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestService_Create_DefaultsToActive(t *testing.T) {
	var saved PaymentMethod
	repo := &fakeRepo{
		createFn: func(ctx context.Context, pm *PaymentMethod) error { saved = *pm; return nil },
	}
	resp, err := NewService(repo).Create(context.Background(), CreatePaymentMethodRequest{Name: "Transferencia"})
	assert.NoError(t, err)
	assert.True(t, saved.Active)
	assert.True(t, resp.Active)
}
