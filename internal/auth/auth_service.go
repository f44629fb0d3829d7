package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "go-repartos/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (TokenPairResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenPairResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, username, password string) (TokenPairResponse, error) {
	empl, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPairResponse{}, autherrors.ErrUserNotFound
		}
		return TokenPairResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte(password)); err != nil {
		return TokenPairResponse{}, autherrors.ErrWrongPassword
	}

	return s.tokenPair(empl)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (TokenPairResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return TokenPairResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrInvalidToken
	}

	empl, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrUserNotFound
	}

	return s.tokenPair(empl)
}

func (s *service) tokenPair(empl *Employee) (TokenPairResponse, error) {
	accessToken, err := generateToken(empl, 15*time.Minute)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := generateToken(empl, 7*24*time.Hour)
	if err != nil {
		return TokenPairResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: AuthResponse{
			ID:   empl.ID.String(),
			Name: empl.Name,
			Role: empl.Role,
		},
	}, nil
}

func generateToken(empl *Employee, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": empl.ID.String(),
		"name":    empl.Name,
		"role":    empl.Role,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
