package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func newExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/chart/export", NewExportHandler().Export)
	return router
}

func TestExportChartWorkbook(t *testing.T) {
	router := newExportRouter()

	w := postJSON(router, "/api/v1/chart/export", `{
		"ascendant": {"degree": "123.45", "sign": "Leo", "houseNumber": 1},
		"houses": [
			{"houseNumber": 1, "sign": "Leo", "startDegree": "120.00", "endDegrees": "150.00",
			 "planets": [{"planetName": "Sun", "degree": "10.25", "sign": "Leo", "houseNumber": 1}]},
			{"houseNumber": 2, "sign": "Virgo", "startDegree": "150.00", "endDegrees": "180.00", "planets": []}
		],
		"nakshatra": "Rohini",
		"mahadasha": {
			"current": {"dashaLord": "Venus", "yearsRemaining": "4.2"},
			"sequence": [
				{"dashaLord": "Venus", "duration": 20, "from": "2010-01-01", "to": "2030-01-01",
				 "antardashas": [{"dashaLord": "Venus", "antardashaLord": "Sun", "durationYears": "1.2", "from": "2010-01-01", "to": "2011-03-14"}]}
			]
		}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "vedic-chart.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	ascendant, err := f.GetCellValue("Chart", "B1")
	assert.NoError(t, err)
	assert.Equal(t, "Leo", ascendant)

	planet, err := f.GetCellValue("Chart", "E5")
	assert.NoError(t, err)
	assert.Equal(t, "Sun", planet)

	currentLord, err := f.GetCellValue("Mahadasha", "B1")
	assert.NoError(t, err)
	assert.Equal(t, "Venus", currentLord)

	antardasha, err := f.GetCellValue("Mahadasha", "B5")
	assert.NoError(t, err)
	assert.Equal(t, "Sun", antardasha)
}

func TestExportRejectsInvalidPayload(t *testing.T) {
	router := newExportRouter()

	w := postJSON(router, "/api/v1/chart/export", `[]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
