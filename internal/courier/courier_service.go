package courier

import (
	"context"
	"regexp"
	"strings"

	couriererrors "go-repartos/internal/courier/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// nameRe allows letters (including Spanish accents) and spaces, nothing else.
var nameRe = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)

//go:generate mockgen -source=courier_service.go -destination=mock/courier_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCourierRequest) (CourierResponse, error)
	GetAll(ctx context.Context) ([]CourierResponse, error)
	GetByID(ctx context.Context, id string) (CourierResponse, error)
	Update(ctx context.Context, id string, req UpdateCourierRequest) (CourierResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("courier.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateCourierRequest) (CourierResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || !nameRe.MatchString(name) {
		return CourierResponse{}, couriererrors.ErrInvalidName
	}

	courier := &Courier{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.repo.Create(ctx, courier); err != nil {
		s.logger.Error("create courier failed", zap.String("name", name), zap.Error(err))
		return CourierResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("courier created", zap.String("courier_id", courier.ID.String()))
	return mapToResponse(*courier), nil
}

func (s *service) GetAll(ctx context.Context) ([]CourierResponse, error) {
	couriers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(couriers), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CourierResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CourierResponse{}, couriererrors.ErrInvalidCourierID
	}

	courier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return CourierResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*courier), nil
}

// Update applies the conditional-update-then-disambiguate idiom: a zero-row
// update is only a failure when the courier does not exist at all.
func (s *service) Update(ctx context.Context, id string, req UpdateCourierRequest) (CourierResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CourierResponse{}, couriererrors.ErrInvalidCourierID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || !nameRe.MatchString(name) {
		return CourierResponse{}, couriererrors.ErrInvalidName
	}

	rows, err := s.repo.UpdateName(ctx, id, name)
	if err != nil {
		return CourierResponse{}, mapRepositoryError(err)
	}

	if rows == 0 {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return CourierResponse{}, mapRepositoryError(err)
		}
		if !exists {
			return CourierResponse{}, couriererrors.ErrCourierNotFound
		}
		// row exists with the same name already; treat as success
	}

	return CourierResponse{ID: id, Name: name}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return couriererrors.ErrInvalidCourierID
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return couriererrors.ErrCourierNotFound
	}

	s.logger.Info("courier deleted", zap.String("courier_id", id))
	return nil
}

func mapToResponse(c Courier) CourierResponse {
	return CourierResponse{
		ID:   c.ID.String(),
		Name: c.Name,
	}
}

func mapToListResponse(couriers []Courier) []CourierResponse {
	res := make([]CourierResponse, len(couriers))
	for i, c := range couriers {
		res[i] = mapToResponse(c)
	}
	return res
}
