package paymentmethoderrors

import (
	"net/http"

	"go-repartos/internal/shared/apperror"
)

var (
	ErrPaymentMethodNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "payment method not found",
		HTTPStatus: http.StatusNotFound,
	}
	ErrPaymentMethodNameExists = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "payment method name already exists",
		HTTPStatus: http.StatusConflict,
	}
	ErrInvalidName = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "payment method name must not be empty",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidPaymentMethodID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "payment method id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}
)
