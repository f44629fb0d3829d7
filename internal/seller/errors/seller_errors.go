package sellererrors

import (
	"net/http"

	"go-repartos/internal/shared/apperror"
)

var (
	ErrSellerNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "seller not found",
		HTTPStatus: http.StatusNotFound,
	}
	ErrSellerNameExists = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "seller name already exists",
		HTTPStatus: http.StatusConflict,
	}
	ErrInvalidName = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "seller name must contain only letters and spaces",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidSellerID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "seller id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}
)
