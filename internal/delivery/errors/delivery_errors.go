package deliveryerrors

import (
	"fmt"
	"net/http"

	"go-repartos/internal/shared/apperror"
)

var (
	ErrDeliveryNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "delivery not found",
		HTTPStatus: http.StatusNotFound,
	}
	ErrTicketExists = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "ticket already registered",
		HTTPStatus: http.StatusConflict,
	}
	ErrInvalidDeliveryID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "delivery id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidTicket = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "ticket must not be empty",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidAmount = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "total amount must be zero or positive",
		HTTPStatus: http.StatusBadRequest,
	}
)

// UnknownReference reports which referenced entity is missing or malformed.
func UnknownReference(entity string) *apperror.AppError {
	return &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    fmt.Sprintf("unknown %s reference", entity),
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotInProgress is the finalize conflict; it reports the state the delivery
// is actually in.
func NotInProgress(status string) *apperror.AppError {
	return &apperror.AppError{
		Code:       apperror.CodeInvalidState,
		Message:    fmt.Sprintf("delivery is not in progress (current status: %s)", status),
		HTTPStatus: http.StatusConflict,
	}
}
