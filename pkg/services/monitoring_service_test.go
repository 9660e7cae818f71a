package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := NewMonitoringService()

	router := gin.New()
	router.Use(svc.LoggingMiddleware())
	router.POST("/api/v1/calculate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/api/v1/monitoring/logs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req, _ := http.NewRequest("POST", "/api/v1/calculate", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	// the monitoring surface itself is not recorded
	req, _ = http.NewRequest("GET", "/api/v1/monitoring/logs", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	data := svc.GetDashboardData(1)
	assert.Equal(t, 1, data.TotalRequests)
	assert.Equal(t, 1, data.Endpoints["/api/v1/calculate"])
	assert.NotContains(t, data.Endpoints, "/api/v1/monitoring/logs")
}

func TestGetDashboardDataAggregation(t *testing.T) {
	svc := NewMonitoringService()
	now := time.Now().UTC()

	svc.LogRequest(LogEntry{Timestamp: now, Path: "/api/v1/calculate", Method: "POST", StatusCode: 200, ResponseTime: 20 * time.Millisecond})
	svc.LogRequest(LogEntry{Timestamp: now, Path: "/api/v1/calculate", Method: "POST", StatusCode: 400, ResponseTime: 10 * time.Millisecond})
	svc.LogRequest(LogEntry{Timestamp: now, Path: "/api/v1/interpret", Method: "POST", StatusCode: 500, ResponseTime: 30 * time.Millisecond})
	// stale entry outside the window
	svc.LogRequest(LogEntry{Timestamp: now.Add(-48 * time.Hour), Path: "/api/v1/calculate", Method: "POST", StatusCode: 200})

	data := svc.GetDashboardData(24)

	assert.Equal(t, 3, data.TotalRequests)
	assert.Equal(t, 2, data.Endpoints["/api/v1/calculate"])
	assert.Equal(t, 1, data.StatusCodes["2xx Success"])
	assert.Equal(t, 1, data.StatusCodes["4xx Client Error"])
	assert.Equal(t, 1, data.StatusCodes["5xx Server Error"])
	assert.Len(t, data.RecentErrors, 1)
	assert.Equal(t, "/api/v1/interpret", data.RecentErrors[0].Path)
}
