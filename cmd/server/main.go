package main

import (
	"log"
	"net/http"

	config "vedic-chart-api/configs"
	"vedic-chart-api/pkg/handlers"
	"vedic-chart-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.LoadConfig()

	r := gin.Default()

	// services
	monitoringService := services.NewMonitoringService()
	calculationService := services.NewCalculationService(cfg.CalcAPIURL)
	interpretationService := services.NewInterpretationService(cfg.InterpretAPIURL)
	geocodeService := services.NewGeocodeService(cfg.GeocodeAPIURL)

	// handlers
	chartHandler := handlers.NewChartHandler(calculationService)
	interpretHandler := handlers.NewInterpretHandler(interpretationService)
	renderHandler := handlers.NewRenderHandler()
	exportHandler := handlers.NewExportHandler()
	geocodeHandler := handlers.NewGeocodeHandler(geocodeService)
	adminHandler := handlers.NewAdminHandler(cfg)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	// middleware
	r.Use(monitoringService.LoggingMiddleware())
	r.Use(cors.Default())

	authMiddleware := func(apiKey string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if apiKey == "" || apiKey == "default_secret_key" {
				c.Next()
				return
			}
			providedKey := c.GetHeader("X-API-KEY")
			if providedKey != apiKey {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.Next()
		}
	}

	r.GET("/health", handlers.HealthCheck)

	v1 := r.Group("/api/v1")
	v1.Use(authMiddleware(cfg.APIKey))
	{
		v1.POST("/calculate", chartHandler.Calculate)
		v1.POST("/interpret", interpretHandler.Interpret)
		v1.GET("/geocode", geocodeHandler.Search)

		chart := v1.Group("/chart")
		{
			chart.POST("/render", renderHandler.Render)
			chart.POST("/export", exportHandler.Export)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/health-status", adminHandler.GetHealthStatus)
			admin.POST("/maintenance/start", adminHandler.StartMaintenance)
			admin.POST("/maintenance/stop", adminHandler.StopMaintenance)
		}

		monitoring := v1.Group("/monitoring")
		{
			monitoring.GET("/logs", monitoringHandler.GetLogs)
		}
	}

	log.Printf("Starting vedic-chart-api server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
