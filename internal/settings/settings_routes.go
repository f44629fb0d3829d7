package settings

import (
	"go-repartos/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	settings := r.Group("/settings")
	settings.Use(middleware.AuthMiddleware())
	{
		settings.GET("", middleware.Authorize(enforcer, "settings", "read"), h.Get)
		settings.PUT("", middleware.Authorize(enforcer, "settings", "update"), h.Save)
	}
}
