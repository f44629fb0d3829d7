package stats

import (
	"go-repartos/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	stats := r.Group("/stats")
	stats.Use(middleware.AuthMiddleware())
	{
		stats.GET("/monthly", middleware.Authorize(enforcer, "stats", "read"), h.Monthly)
		stats.GET("/month-over-month", middleware.Authorize(enforcer, "stats", "read"), h.MonthOverMonth)
	}
}
