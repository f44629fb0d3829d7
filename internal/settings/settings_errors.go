package settings

import (
	"net/http"

	"go-repartos/internal/shared/apperror"
)

var ErrNegativeAmount = &apperror.AppError{
	Code:       apperror.CodeInvalidInput,
	Message:    "payroll amounts must be zero or positive",
	HTTPStatus: http.StatusBadRequest,
}
