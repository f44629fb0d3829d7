package courier

import (
	"errors"
	"strings"

	couriererrors "go-repartos/internal/courier/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return couriererrors.ErrCourierNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return couriererrors.ErrCourierNameExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return couriererrors.ErrCourierNameExists
	}

	return err
}
