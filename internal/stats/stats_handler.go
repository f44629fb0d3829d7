package stats

import (
	"net/http"
	"strconv"

	"go-repartos/internal/shared/apperror"
	"go-repartos/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
}

// period parses month/year query params; non-numeric input falls through to
// the service validators as out-of-range zeros.
func period(c *gin.Context) (int, int) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	return month, year
}

func (h *Handler) Monthly(c *gin.Context) {
	month, year := period(c)
	resp, err := h.service.MonthlyStats(c.Request.Context(), month, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", resp)
}

func (h *Handler) MonthOverMonth(c *gin.Context) {
	month, year := period(c)
	resp, err := h.service.MonthOverMonth(c.Request.Context(), month, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", resp)
}
