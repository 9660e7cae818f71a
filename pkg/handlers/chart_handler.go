package handlers

import (
	"log"
	"net/http"

	"vedic-chart-api/pkg/astro"
	"vedic-chart-api/pkg/models"
	"vedic-chart-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// ChartHandler serves the chart calculation proxy.
type ChartHandler struct {
	calculationService *services.CalculationService
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(calculationService *services.CalculationService) *ChartHandler {
	return &ChartHandler{
		calculationService: calculationService,
	}
}

// Calculate normalizes the submitted birth data, forwards it to the
// external calculation API and returns the resulting chart unchanged.
func (h *ChartHandler) Calculate(c *gin.Context) {
	var input models.BirthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	// Missing fields and unparseable date/time are both client errors;
	// neither reaches the upstream service.
	req, err := astro.NormalizeBirthInput(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.calculationService.Calculate(c.Request.Context(), req)
	if err != nil {
		log.Printf("calculation upstream error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate chart: " + err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", chart)
}
