package routes

import (
	"net/http"
	"time"

	"fuel-dispatch-monitor/internal/config"
	"fuel-dispatch-monitor/internal/delivery/http/handler"
	"fuel-dispatch-monitor/internal/gps"
	"fuel-dispatch-monitor/internal/logger"
	"fuel-dispatch-monitor/internal/middleware"
	"fuel-dispatch-monitor/internal/repository/memory"
	"fuel-dispatch-monitor/internal/usecase/dashboard"
	"fuel-dispatch-monitor/internal/usecase/dispatchops"
	"fuel-dispatch-monitor/internal/usecase/profile"
	"fuel-dispatch-monitor/internal/usecase/registry"
	"fuel-dispatch-monitor/internal/usecase/report"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, store *memory.Store) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(1 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	dispatchRepo := store.Dispatch()
	fleetRepo := store.Fleet()

	dashboardService := dashboard.NewService(dispatchRepo, fleetRepo)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	reportService := report.NewService(dispatchRepo, fleetRepo)
	reportHandler := handler.NewReportHandler(reportService)

	dispatchService := dispatchops.NewService(dispatchRepo)
	dispatchHandler := handler.NewDispatchHandler(dispatchService)

	registryService := registry.NewService(fleetRepo)
	registryHandler := handler.NewRegistryHandler(registryService)

	profileService := profile.NewService(store)
	profileHandler := handler.NewProfileHandler(profileService)

	gpsClient := gps.NewClient(&cfg.GPS)
	trackingHandler := handler.NewTrackingHandler(gpsClient)

	v1 := router.Group("/api/v1")
	{
		dashboardHandler.RegisterRoutes(v1)
		reportHandler.RegisterRoutes(v1)
		dispatchHandler.RegisterRoutes(v1)
		registryHandler.RegisterRoutes(v1)
		profileHandler.RegisterRoutes(v1)
		trackingHandler.RegisterRoutes(v1)
	}

	logger.Info("All routes initialized")
	return router
}

// NewSeededStore builds the in-memory store with the reference fixture
// set anchored to the current time, so monitored dispatches always fall
// inside their status windows on startup.
func NewSeededStore() *memory.Store {
	return memory.NewStore(memory.DefaultFixtures(time.Now()))
}
