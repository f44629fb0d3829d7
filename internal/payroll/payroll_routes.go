package payroll

import (
	"go-repartos/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	{
		payroll.POST("/calculate", middleware.Authorize(enforcer, "payroll", "read"), h.Calculate)
		payroll.POST("/reports", middleware.Authorize(enforcer, "payroll", "create"), h.SaveReport)
		payroll.GET("/reports", middleware.Authorize(enforcer, "payroll", "read"), h.GetReports)
		payroll.GET("/reports/:id", middleware.Authorize(enforcer, "payroll", "read"), h.GetReportByID)
	}
}
