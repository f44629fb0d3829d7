package destination

import (
	"errors"
	"strings"

	destinationerrors "go-repartos/internal/destination/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return destinationerrors.ErrDestinationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return destinationerrors.ErrDestinationPlaceExists
	}
	if strings.Contains(err.Error(), "duplicate key value") {
		return destinationerrors.ErrDestinationPlaceExists
	}

	return err
}
