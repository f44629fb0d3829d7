package attendance

import (
	"go-repartos/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("/today", middleware.Authorize(enforcer, "attendance", "read"), h.ListToday)
		attendances.PUT("", middleware.Authorize(enforcer, "attendance", "update"), h.Upsert)
	}
}
