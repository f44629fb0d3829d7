package seller

import (
	"go-repartos/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	sellers := r.Group("/sellers")
	sellers.Use(middleware.AuthMiddleware())
	{
		sellers.GET("", middleware.Authorize(enforcer, "seller", "read"), h.GetAll)
		sellers.POST("", middleware.Authorize(enforcer, "seller", "create"), h.Create)
		sellers.GET("/:id", middleware.Authorize(enforcer, "seller", "read"), h.GetByID)
		sellers.PUT("/:id", middleware.Authorize(enforcer, "seller", "update"), h.Update)
		sellers.DELETE("/:id", middleware.Authorize(enforcer, "seller", "delete"), h.Delete)
	}
}
