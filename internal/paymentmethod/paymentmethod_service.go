package paymentmethod

import (
	"context"
	"strings"

	paymentmethoderrors "go-repartos/internal/paymentmethod/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentmethod_service.go -destination=mock/paymentmethod_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePaymentMethodRequest) (PaymentMethodResponse, error)
	GetAll(ctx context.Context) ([]PaymentMethodResponse, error)
	GetByID(ctx context.Context, id string) (PaymentMethodResponse, error)
	Update(ctx context.Context, id string, req UpdatePaymentMethodRequest) (PaymentMethodResponse, error)
	SetActive(ctx context.Context, id string, active bool) (PaymentMethodResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("paymentmethod.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreatePaymentMethodRequest) (PaymentMethodResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return PaymentMethodResponse{}, paymentmethoderrors.ErrInvalidName
	}

	pm := &PaymentMethod{
		ID:     uuid.New(),
		Name:   name,
		Active: true,
	}

	if err := s.repo.Create(ctx, pm); err != nil {
		s.logger.Error("create payment method failed", zap.String("name", name), zap.Error(err))
		return PaymentMethodResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("payment method created", zap.String("payment_method_id", pm.ID.String()))
	return mapToResponse(*pm), nil
}

func (s *service) GetAll(ctx context.Context) ([]PaymentMethodResponse, error) {
	methods, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]PaymentMethodResponse, len(methods))
	for i, pm := range methods {
		res[i] = mapToResponse(pm)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PaymentMethodResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PaymentMethodResponse{}, paymentmethoderrors.ErrInvalidPaymentMethodID
	}

	pm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PaymentMethodResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pm), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePaymentMethodRequest) (PaymentMethodResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PaymentMethodResponse{}, paymentmethoderrors.ErrInvalidPaymentMethodID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return PaymentMethodResponse{}, paymentmethoderrors.ErrInvalidName
	}

	rows, err := s.repo.UpdateName(ctx, id, name)
	if err != nil {
		return PaymentMethodResponse{}, mapRepositoryError(err)
	}
	if rows == 0 {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return PaymentMethodResponse{}, mapRepositoryError(err)
		}
		if !exists {
			return PaymentMethodResponse{}, paymentmethoderrors.ErrPaymentMethodNotFound
		}
	}

	pm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PaymentMethodResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*pm), nil
}

// SetActive toggles availability. A zero-row update means either the method
// is already in the requested state or it does not exist; only the latter
// is an error.
func (s *service) SetActive(ctx context.Context, id string, active bool) (PaymentMethodResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PaymentMethodResponse{}, paymentmethoderrors.ErrInvalidPaymentMethodID
	}

	rows, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return PaymentMethodResponse{}, mapRepositoryError(err)
	}

	if rows == 0 {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return PaymentMethodResponse{}, mapRepositoryError(err)
		}
		if !exists {
			return PaymentMethodResponse{}, paymentmethoderrors.ErrPaymentMethodNotFound
		}
	}

	pm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PaymentMethodResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("payment method availability changed",
		zap.String("payment_method_id", id),
		zap.Bool("active", active),
	)
	return mapToResponse(*pm), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return paymentmethoderrors.ErrInvalidPaymentMethodID
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return paymentmethoderrors.ErrPaymentMethodNotFound
	}

	s.logger.Info("payment method deleted", zap.String("payment_method_id", id))
	return nil
}

func mapToResponse(pm PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:     pm.ID.String(),
		Name:   pm.Name,
		Active: pm.Active,
	}
}
