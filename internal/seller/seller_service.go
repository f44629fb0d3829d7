package seller

import (
	"context"
	"regexp"
	"strings"

	sellererrors "go-repartos/internal/seller/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var nameRe = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)

//go:generate mockgen -source=seller_service.go -destination=mock/seller_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSellerRequest) (SellerResponse, error)
	GetAll(ctx context.Context) ([]SellerResponse, error)
	GetByID(ctx context.Context, id string) (SellerResponse, error)
	Update(ctx context.Context, id string, req UpdateSellerRequest) (SellerResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("seller.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateSellerRequest) (SellerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || !nameRe.MatchString(name) {
		return SellerResponse{}, sellererrors.ErrInvalidName
	}

	seller := &Seller{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.repo.Create(ctx, seller); err != nil {
		s.logger.Error("create seller failed", zap.String("name", name), zap.Error(err))
		return SellerResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("seller created", zap.String("seller_id", seller.ID.String()))
	return mapToResponse(*seller), nil
}

func (s *service) GetAll(ctx context.Context) ([]SellerResponse, error) {
	sellers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(sellers), nil
}

func (s *service) GetByID(ctx context.Context, id string) (SellerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SellerResponse{}, sellererrors.ErrInvalidSellerID
	}

	seller, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return SellerResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*seller), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSellerRequest) (SellerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SellerResponse{}, sellererrors.ErrInvalidSellerID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || !nameRe.MatchString(name) {
		return SellerResponse{}, sellererrors.ErrInvalidName
	}

	rows, err := s.repo.UpdateName(ctx, id, name)
	if err != nil {
		return SellerResponse{}, mapRepositoryError(err)
	}

	if rows == 0 {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return SellerResponse{}, mapRepositoryError(err)
		}
		if !exists {
			return SellerResponse{}, sellererrors.ErrSellerNotFound
		}
	}

	return SellerResponse{ID: id, Name: name}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return sellererrors.ErrInvalidSellerID
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if rows == 0 {
		return sellererrors.ErrSellerNotFound
	}

	s.logger.Info("seller deleted", zap.String("seller_id", id))
	return nil
}

func mapToResponse(s Seller) SellerResponse {
	return SellerResponse{
		ID:   s.ID.String(),
		Name: s.Name,
	}
}

func mapToListResponse(sellers []Seller) []SellerResponse {
	res := make([]SellerResponse, len(sellers))
	for i, s := range sellers {
		res[i] = mapToResponse(s)
	}
	return res
}
