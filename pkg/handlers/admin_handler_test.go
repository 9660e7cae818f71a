package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	config "vedic-chart-api/configs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAdminHandler(&config.Config{
		AdminUsername: "ops",
		AdminPassword: "secret",
	})

	router := gin.New()
	router.GET("/health", HealthCheck)
	router.GET("/api/v1/admin/health-status", handler.GetHealthStatus)
	router.POST("/api/v1/admin/maintenance/start", handler.StartMaintenance)
	router.POST("/api/v1/admin/maintenance/stop", handler.StopMaintenance)
	return router
}

func TestHealthCheck(t *testing.T) {
	isMaintenanceMode.Store(false)
	router := newAdminRouter()

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
	assert.Contains(t, w.Body.String(), "vedic-chart-api")
}

func TestMaintenanceModeLifecycle(t *testing.T) {
	isMaintenanceMode.Store(false)
	router := newAdminRouter()

	// wrong credentials are rejected
	w := postJSON(router, "/api/v1/admin/maintenance/start", `{"username": "ops", "password": "nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// start maintenance
	w = postJSON(router, "/api/v1/admin/maintenance/start", `{"username": "ops", "password": "secret"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// health probe now reports unavailable
	req, _ := http.NewRequest("GET", "/health", nil)
	probe := httptest.NewRecorder()
	router.ServeHTTP(probe, req)
	assert.Equal(t, http.StatusServiceUnavailable, probe.Code)

	// operator status reflects the flag
	req, _ = http.NewRequest("GET", "/api/v1/admin/health-status", nil)
	status := httptest.NewRecorder()
	router.ServeHTTP(status, req)
	assert.Contains(t, status.Body.String(), "true")

	// stop maintenance
	w = postJSON(router, "/api/v1/admin/maintenance/stop", `{"username": "ops", "password": "secret"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/health", nil)
	probe = httptest.NewRecorder()
	router.ServeHTTP(probe, req)
	assert.Equal(t, http.StatusOK, probe.Code)
}
