package stats

import (
	"net/http"

	"go-repartos/internal/shared/apperror"
)

var (
	ErrInvalidMonth = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "month must be between 1 and 12",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidYear = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "year must be 2020 or later",
		HTTPStatus: http.StatusBadRequest,
	}
)
