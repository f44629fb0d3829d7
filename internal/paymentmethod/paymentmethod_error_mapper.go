package paymentmethod

import (
	"errors"
	"strings"

	paymentmethoderrors "go-repartos/internal/paymentmethod/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paymentmethoderrors.ErrPaymentMethodNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return paymentmethoderrors.ErrPaymentMethodNameExists
	}
	if strings.Contains(err.Error(), "duplicate key value") {
		return paymentmethoderrors.ErrPaymentMethodNameExists
	}

	return err
}
