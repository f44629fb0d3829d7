package paymentmethod

import (
	"go-repartos/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	methods := r.Group("/payment-methods")
	methods.Use(middleware.AuthMiddleware())
	{
		methods.GET("", middleware.Authorize(enforcer, "paymentmethod", "read"), h.GetAll)
		methods.POST("", middleware.Authorize(enforcer, "paymentmethod", "create"), h.Create)
		methods.GET("/:id", middleware.Authorize(enforcer, "paymentmethod", "read"), h.GetByID)
		methods.PUT("/:id", middleware.Authorize(enforcer, "paymentmethod", "update"), h.Update)
		methods.PATCH("/:id/active", middleware.Authorize(enforcer, "paymentmethod", "update"), h.SetActive)
		methods.DELETE("/:id", middleware.Authorize(enforcer, "paymentmethod", "delete"), h.Delete)
	}
}
