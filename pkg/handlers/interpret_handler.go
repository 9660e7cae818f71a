package handlers

import (
	"errors"
	"log"
	"net/http"

	"vedic-chart-api/pkg/models"
	"vedic-chart-api/pkg/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InterpretHandler serves the conversational interpretation proxy.
type InterpretHandler struct {
	interpretationService *services.InterpretationService
}

// NewInterpretHandler creates a new InterpretHandler.
func NewInterpretHandler(interpretationService *services.InterpretationService) *InterpretHandler {
	return &InterpretHandler{
		interpretationService: interpretationService,
	}
}

// Interpret forwards a question about a computed chart (plus any prior
// conversation) to the external interpretation API.
func (h *InterpretHandler) Interpret(c *gin.Context) {
	var req models.InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and chartData are required: " + err.Error()})
		return
	}

	// セッションIDが指定されていない場合は新規生成
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	interpretation, err := h.interpretationService.Interpret(c.Request.Context(), req)
	if err != nil {
		var shapeErr *services.ResponseShapeError
		if errors.As(err, &shapeErr) {
			// 2xx with a wrong body means the upstream contract drifted;
			// log it apart from plain transport failures
			log.Printf("interpretation contract drift: %v", err)
		} else {
			log.Printf("interpretation upstream error: %v", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to interpret question"})
		return
	}

	c.JSON(http.StatusOK, models.InterpretResponse{
		Interpretation: interpretation,
		SessionID:      req.SessionID,
	})
}
