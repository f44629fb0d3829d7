package courier

import (
	"go-repartos/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	couriers := r.Group("/couriers")
	couriers.Use(middleware.AuthMiddleware())
	{
		couriers.GET("", middleware.Authorize(enforcer, "courier", "read"), h.GetAll)
		couriers.POST("", middleware.Authorize(enforcer, "courier", "create"), h.Create)
		couriers.GET("/:id", middleware.Authorize(enforcer, "courier", "read"), h.GetByID)
		couriers.PUT("/:id", middleware.Authorize(enforcer, "courier", "update"), h.Update)
		couriers.DELETE("/:id", middleware.Authorize(enforcer, "courier", "delete"), h.Delete)
	}
}
