package destination

import (
	"context"
	"strings"

	destinationerrors "go-repartos/internal/destination/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=destination_service.go -destination=mock/destination_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDestinationRequest) (DestinationResponse, error)
	GetAll(ctx context.Context) ([]DestinationResponse, error)
	GetByID(ctx context.Context, id string) (DestinationResponse, error)
	Update(ctx context.Context, id string, req UpdateDestinationRequest) (DestinationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("destination.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateDestinationRequest) (DestinationResponse, error) {
	place := strings.TrimSpace(req.Place)
	address := strings.TrimSpace(req.Address)
	if place == "" {
		return DestinationResponse{}, destinationerrors.ErrInvalidPlace
	}
	if address == "" {
		return DestinationResponse{}, destinationerrors.ErrInvalidAddress
	}

	dest := &Destination{
		ID:      uuid.New(),
		Place:   place,
		Address: address,
	}

	if err := s.repo.Create(ctx, dest); err != nil {
		s.logger.Error("create destination failed", zap.String("place", place), zap.Error(err))
		return DestinationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("destination created", zap.String("destination_id", dest.ID.String()))
	return mapToResponse(*dest), nil
}

func (s *service) GetAll(ctx context.Context) ([]DestinationResponse, error) {
	destinations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(destinations), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DestinationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DestinationResponse{}, destinationerrors.ErrInvalidDestinationID
	}

	dest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DestinationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dest), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDestinationRequest) (DestinationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DestinationResponse{}, destinationerrors.ErrInvalidDestinationID
	}
	place := strings.TrimSpace(req.Place)
	address := strings.TrimSpace(req.Address)
	if place == "" {
		return DestinationResponse{}, destinationerrors.ErrInvalidPlace
	}
	if address == "" {
		return DestinationResponse{}, destinationerrors.ErrInvalidAddress
	}

	rows, err := s.repo.Update(ctx, id, place, address)
	if err != nil {
		return DestinationResponse{}, mapRepositoryError(err)
	}

	if rows == 0 {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return DestinationResponse{}, mapRepositoryError(err)
		}
		if !exists {
			return DestinationResponse{}, destinationerrors.ErrDestinationNotFound
		}
	}

	return DestinationResponse{ID: id, Place: place, Address: address}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return destinationerrors.ErrInvalidDestinationID
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return destinationerrors.ErrDestinationNotFound
	}

	s.logger.Info("destination deleted", zap.String("destination_id", id))
	return nil
}

func mapToResponse(d Destination) DestinationResponse {
	return DestinationResponse{
		ID:      d.ID.String(),
		Place:   d.Place,
		Address: d.Address,
	}
}

func mapToListResponse(destinations []Destination) []DestinationResponse {
	res := make([]DestinationResponse, len(destinations))
	for i, d := range destinations {
		res[i] = mapToResponse(d)
	}
	return res
}
