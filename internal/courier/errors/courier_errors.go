package couriererrors

import (
	"net/http"

	"go-repartos/internal/shared/apperror"
)

var (
	ErrCourierNotFound = apperror.New(
		apperror.CodeNotFound,
		"courier not found",
		http.StatusNotFound,
	)
	ErrCourierNameExists = apperror.New(
		apperror.CodeConflict,
		"a courier with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidName = apperror.New(
		apperror.CodeInvalidInput,
		"name must contain only letters and spaces",
		http.StatusBadRequest,
	)
	ErrInvalidCourierID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid courier id",
		http.StatusBadRequest,
	)
)
