package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRenderRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/chart/render", NewRenderHandler().Render)
	return router
}

func TestRenderChart(t *testing.T) {
	router := newRenderRouter()

	w := postJSON(router, "/api/v1/chart/render", `{
		"ascendant": {"degree": "123.45", "sign": "Leo", "houseNumber": 1},
		"houses": [
			{"houseNumber": 1, "sign": "Leo", "startDegree": "120.00", "endDegrees": "150.00",
			 "planets": [
				{"planetName": "Rahu", "degree": "132.10", "sign": "Leo", "houseNumber": 1},
				{"planetName": "Sun", "degree": "bogus", "sign": "Leo", "houseNumber": 1}
			 ]}
		],
		"nakshatra": "Rohini",
		"mahadasha": {"current": {"dashaLord": "Venus", "yearsRemaining": "4.2"}, "sequence": []}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Chart   struct {
			Radix struct {
				Planets map[string][]float64 `json:"planets"`
				Cusps   []float64            `json:"cusps"`
			} `json:"radix"`
			HousePlanets map[string][]string `json:"housePlanets"`
		} `json:"chart"`
		HousePositions map[string]map[string]string `json:"housePositions"`
		PlanetSymbols  map[string]string            `json:"planetSymbols"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, []float64{132.10}, resp.Chart.Radix.Planets["NNode"])
	assert.NotContains(t, resp.Chart.Radix.Planets, "Rahu")
	// the unparseable Sun degree is dropped, not an error
	assert.NotContains(t, resp.Chart.Radix.Planets, "Sun")
	assert.Equal(t, []float64{120.0}, resp.Chart.Radix.Cusps)
	assert.Equal(t, []string{"Rahu", "Sun"}, resp.Chart.HousePlanets["1"])
	assert.Len(t, resp.HousePositions, 12)
	assert.Equal(t, "Su", resp.PlanetSymbols["Sun"])
}

func TestRenderRejectsInvalidPayload(t *testing.T) {
	router := newRenderRouter()

	w := postJSON(router, "/api/v1/chart/render", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
