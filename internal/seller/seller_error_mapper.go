package seller

import (
	"errors"
	"strings"

	sellererrors "go-repartos/internal/seller/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sellererrors.ErrSellerNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return sellererrors.ErrSellerNameExists
	}
	if strings.Contains(err.Error(), "duplicate key value") {
		return sellererrors.ErrSellerNameExists
	}

	return err
}
