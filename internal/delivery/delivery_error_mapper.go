package delivery

import (
	"errors"
	"strings"

	deliveryerrors "go-repartos/internal/delivery/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return deliveryerrors.ErrDeliveryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return deliveryerrors.ErrTicketExists
	}
	if strings.Contains(err.Error(), "duplicate key value") {
		return deliveryerrors.ErrTicketExists
	}

	return err
}
