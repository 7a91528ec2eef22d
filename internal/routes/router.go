package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-console/internal/config"
	"fleet-console/internal/delivery/http/handler"
	"fleet-console/internal/infrastructure/memstore"
	"fleet-console/internal/logger"
	"fleet-console/internal/middleware"
	"fleet-console/internal/telemetry"
	"fleet-console/internal/usecase/device"
)

// Stores groups the process-lifetime state shared by handlers and the
// simulator.
type Stores struct {
	Registry *memstore.DeviceRegistry
	Commands *memstore.CommandLog
	Health   *memstore.HealthStore
}

// SetupRoutes assembles the middleware chain and mounts the API at the
// router root.
func SetupRoutes(cfg *config.Config, stores *Stores, simulator *telemetry.Simulator, broker *telemetry.Broker) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	deviceService := device.NewService(stores.Registry, stores.Commands, stores.Health, logger.Logger)
	deviceHandler := handler.NewDeviceHandler(deviceService)
	telemetryHandler := handler.NewTelemetryHandler(
		stores.Registry,
		simulator,
		broker,
		cfg.Stream.HeartbeatInterval,
		cfg.Stream.RetryMillis,
	)

	root := router.Group("")
	{
		deviceHandler.RegisterRoutes(root)
		telemetryHandler.RegisterRoutes(root)
	}

	logger.Info("All routes initialized")
	return router
}
