package destinationerrors

import (
	"net/http"

	"go-repartos/internal/shared/apperror"
)

var (
	ErrDestinationNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "destination not found",
		HTTPStatus: http.StatusNotFound,
	}
	ErrDestinationPlaceExists = &apperror.AppError{
		Code:       apperror.CodeConflict,
		Message:    "destination place already exists",
		HTTPStatus: http.StatusConflict,
	}
	ErrInvalidPlace = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "destination place must not be empty",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidAddress = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "destination address must not be empty",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidDestinationID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "destination id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}
)
