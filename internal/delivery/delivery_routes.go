package delivery

import (
	"go-repartos/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	deliveries := r.Group("/deliveries")
	deliveries.Use(middleware.AuthMiddleware())
	{
		deliveries.GET("", middleware.Authorize(enforcer, "delivery", "read"), h.GetAll)
		deliveries.POST("",
			middleware.Authorize(enforcer, "delivery", "create"),
			middleware.Idempotency(rdb),
			h.Create,
		)
		deliveries.PATCH("/:id/finalize", middleware.Authorize(enforcer, "delivery", "update"), h.Finalize)
	}
}
