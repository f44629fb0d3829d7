package app

import (
	"go-repartos/internal/attendance"
	"go-repartos/internal/auth"
	"go-repartos/internal/courier"
	"go-repartos/internal/delivery"
	"go-repartos/internal/destination"
	"go-repartos/internal/messaging/kafka"
	"go-repartos/internal/middleware"
	"go-repartos/internal/paymentmethod"
	"go-repartos/internal/payroll"
	"go-repartos/internal/rbac"
	"go-repartos/internal/seller"
	"go-repartos/internal/settings"
	"go-repartos/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB, redisClient *redis.Client) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	api := router.Group("/api/v1")

	// auth
	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo)
	auth.RegisterRoutes(api, auth.NewHandler(authService))

	// reference entities
	courierRepo := courier.NewRepository(db)
	courier.RegisterRoutes(api, courier.NewHandler(courier.NewService(courierRepo)), enforcer)

	sellerRepo := seller.NewRepository(db)
	seller.RegisterRoutes(api, seller.NewHandler(seller.NewService(sellerRepo)), enforcer)

	destinationRepo := destination.NewRepository(db)
	destination.RegisterRoutes(api, destination.NewHandler(destination.NewService(destinationRepo)), enforcer)

	paymentMethodRepo := paymentmethod.NewRepository(db)
	paymentmethod.RegisterRoutes(api, paymentmethod.NewHandler(paymentmethod.NewService(paymentMethodRepo)), enforcer)

	// settings
	settingsRepo := settings.NewRepository(db)
	settings.RegisterRoutes(api, settings.NewHandler(settings.NewService(settingsRepo, redisClient)), enforcer)

	// attendance
	attendanceRepo := attendance.NewRepository(db)
	attendance.RegisterRoutes(api, attendance.NewHandler(attendance.NewService(attendanceRepo)), enforcer)

	// deliveries with transactional outbox
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	deliveryRepo := delivery.NewRepository(db, sqlDB)
	deliveryService := delivery.NewService(deliveryRepo, outboxRepo, sqlDB)
	delivery.RegisterRoutes(api, delivery.NewHandlerWithRedis(deliveryService, redisClient), enforcer, redisClient)

	// payroll
	payrollRepo := payroll.NewRepository(db, sqlDB)
	payroll.RegisterRoutes(api, payroll.NewHandler(payroll.NewService(payrollRepo, sqlDB)), enforcer)

	// stats
	statsRepo := stats.NewRepository(db)
	stats.RegisterRoutes(api, stats.NewHandler(stats.NewService(statsRepo, settingsRepo, redisClient)), enforcer)

	return nil
}
