package payrollerrors

import (
	"net/http"

	"go-repartos/internal/shared/apperror"
)

var (
	ErrInvalidDate = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "dates must be in YYYY-MM-DD format",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidDateRange = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "start date must not be after end date",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrInvalidConfig = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "payroll config values must be zero or positive",
		HTTPStatus: http.StatusBadRequest,
	}
	ErrReportNotFound = &apperror.AppError{
		Code:       apperror.CodeNotFound,
		Message:    "payroll report not found",
		HTTPStatus: http.StatusNotFound,
	}
	ErrInvalidReportID = &apperror.AppError{
		Code:       apperror.CodeInvalidInput,
		Message:    "report id must be a valid uuid",
		HTTPStatus: http.StatusBadRequest,
	}
)
