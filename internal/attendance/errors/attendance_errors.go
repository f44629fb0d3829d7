package attendanceerrors

import (
	"net/http"

	"go-repartos/internal/shared/apperror"
)

var (
	ErrInvalidCourierID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "courier id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrCourierNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "courier not found",
		HTTPStatus: http.StatusNotFound,
	}
	ErrInvalidStatus = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "status must be one of PRESENT, LATE, ABSENT",
		HTTPStatus: http.StatusBadRequest,
	}
)
