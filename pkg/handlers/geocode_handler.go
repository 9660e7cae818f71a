package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"vedic-chart-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// GeocodeHandler proxies the location picker's place search.
type GeocodeHandler struct {
	geocodeService *services.GeocodeService
}

// NewGeocodeHandler creates a new GeocodeHandler.
func NewGeocodeHandler(geocodeService *services.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeService: geocodeService,
	}
}

// Search returns place candidates for a free-text query.
func (h *GeocodeHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}
	if limit > 10 {
		limit = 10
	}

	results, err := h.geocodeService.Search(c.Request.Context(), query, limit)
	if err != nil {
		log.Printf("geocode upstream error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "geocoding search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    results,
	})
}
