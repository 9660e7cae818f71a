package handler

import (
	"log"
	"net/http"
	"sync"

	config "vedic-chart-api/configs"
	"vedic-chart-api/pkg/handlers"
	"vedic-chart-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	app  *gin.Engine
	once sync.Once
)

// setupApp initializes the Gin application. On serverless platforms the
// function instance is reused across invocations, so the router is
// built only once.
func setupApp() *gin.Engine {
	once.Do(func() {
		// .env is not loaded here; serverless platforms inject the
		// environment directly.
		cfg := config.LoadConfig()

		r := gin.Default()

		monitoringService := services.NewMonitoringService()
		calculationService := services.NewCalculationService(cfg.CalcAPIURL)
		interpretationService := services.NewInterpretationService(cfg.InterpretAPIURL)
		geocodeService := services.NewGeocodeService(cfg.GeocodeAPIURL)

		chartHandler := handlers.NewChartHandler(calculationService)
		interpretHandler := handlers.NewInterpretHandler(interpretationService)
		renderHandler := handlers.NewRenderHandler()
		exportHandler := handlers.NewExportHandler()
		geocodeHandler := handlers.NewGeocodeHandler(geocodeService)
		adminHandler := handlers.NewAdminHandler(cfg)
		monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

		r.Use(monitoringService.LoggingMiddleware())
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		r.Use(cors.New(corsConfig))

		authMiddleware := func(apiKey string) gin.HandlerFunc {
			return func(c *gin.Context) {
				if apiKey == "" || apiKey == "default_secret_key" {
					c.Next()
					return
				}
				providedKey := c.GetHeader("X-API-KEY")
				if providedKey != apiKey {
					log.Printf("rejected request with invalid API key")
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

		app = r
	})
	return app
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	setupApp().ServeHTTP(w, r)
}
