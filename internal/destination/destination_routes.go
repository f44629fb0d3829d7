package destination

import (
	"go-repartos/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	destinations := r.Group("/destinations")
	destinations.Use(middleware.AuthMiddleware())
	{
		destinations.GET("", middleware.Authorize(enforcer, "destination", "read"), h.GetAll)
		destinations.POST("", middleware.Authorize(enforcer, "destination", "create"), h.Create)
		destinations.GET("/:id", middleware.Authorize(enforcer, "destination", "read"), h.GetByID)
		destinations.PUT("/:id", middleware.Authorize(enforcer, "destination", "update"), h.Update)
		destinations.DELETE("/:id", middleware.Authorize(enforcer, "destination", "delete"), h.Delete)
	}
}
