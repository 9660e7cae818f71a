package handlers

import (
	"net/http"

	"vedic-chart-api/pkg/astro"
	"vedic-chart-api/pkg/models"

	"github.com/gin-gonic/gin"
)

// RenderHandler exposes the chart adapter to the frontend: it reshapes
// a calculation result into the drawing library's input plus the house
// overlay grouping.
type RenderHandler struct{}

// NewRenderHandler creates a new RenderHandler.
func NewRenderHandler() *RenderHandler {
	return &RenderHandler{}
}

// Render adapts a ChartResult for presentation.
func (h *RenderHandler) Render(c *gin.Context) {
	var chart models.ChartResult
	if err := c.ShouldBindJSON(&chart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart payload: " + err.Error()})
		return
	}

	rendered := models.RenderedChart{
		Radix:        astro.BuildRadixChart(chart),
		HousePlanets: astro.GroupPlanetsByHouse(chart),
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"chart":          rendered,
		"housePositions": astro.HousePositions,
		"planetSymbols":  astro.PlanetSymbols,
	})
}
