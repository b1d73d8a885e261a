package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "taller_dashboards/docs" // This will be auto-generated
	"taller_dashboards/internal/adapter/http/handlers"
	"taller_dashboards/internal/infrastructure/config"
	"taller_dashboards/internal/infrastructure/logging"
	"taller_dashboards/internal/infrastructure/metrics"
	"taller_dashboards/internal/infrastructure/workshopapi"
	"taller_dashboards/internal/usecase"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, log)

	if err := router.Run(cfg.Address); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(cfg *config.Configuration, log *logrus.Logger) {
	registry := metrics.NewRegistry()
	router.GET("/metrics", gin.WrapH(registry.Handler()))

	api := workshopapi.New(cfg.WorkshopAPIBaseURL, cfg.FetchTimeout, log)
	loader := usecase.NewSnapshotLoader(api, usecase.NewFetchRetryPolicy(cfg.RetryDelay), registry, log)

	receptionistUC := usecase.NewReceptionistDashboardUseCase(loader, registry, log)
	adminUC := usecase.NewAdminDashboardUseCase(loader, registry, log)
	mechanicUC := usecase.NewMechanicDashboardUseCase(loader, registry, log)

	dashboardHandler := handlers.NewDashboardHandler(receptionistUC, adminUC, mechanicUC, log)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDashboardRoutes(v1, dashboardHandler)
}

func setMiddlewares(log *logrus.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestID())
}

// requestID echoes the incoming X-Request-ID header or mints one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
