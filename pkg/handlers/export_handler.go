package handlers

import (
	"fmt"
	"log"
	"net/http"

	"vedic-chart-api/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler renders a computed chart as a downloadable workbook.
type ExportHandler struct{}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// Export writes the chart result into an .xlsx workbook: one sheet for
// house placements, one for the dasha sequence.
func (h *ExportHandler) Export(c *gin.Context) {
	var chart models.ChartResult
	if err := c.ShouldBindJSON(&chart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart payload: " + err.Error()})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const chartSheet = "Chart"
	f.SetSheetName("Sheet1", chartSheet)

	f.SetSheetRow(chartSheet, "A1", &[]interface{}{"Ascendant", chart.Ascendant.Sign, chart.Ascendant.Degree})
	f.SetSheetRow(chartSheet, "A2", &[]interface{}{"Nakshatra", chart.Nakshatra})

	f.SetSheetRow(chartSheet, "A4", &[]interface{}{"House", "Sign", "Start Degree", "End Degree", "Planet", "Planet Degree", "Planet Nakshatra"})
	row := 5
	for _, house := range chart.Houses {
		if len(house.Planets) == 0 {
			f.SetSheetRow(chartSheet, fmt.Sprintf("A%d", row), &[]interface{}{house.HouseNumber, house.Sign, house.StartDegree, house.EndDegrees})
			row++
			continue
		}
		for _, planet := range house.Planets {
			f.SetSheetRow(chartSheet, fmt.Sprintf("A%d", row), &[]interface{}{house.HouseNumber, house.Sign, house.StartDegree, house.EndDegrees, planet.PlanetName, planet.Degree, planet.Nakshatra})
			row++
		}
	}

	const dashaSheet = "Mahadasha"
	f.NewSheet(dashaSheet)
	f.SetSheetRow(dashaSheet, "A1", &[]interface{}{"Current Lord", chart.Mahadasha.Current.DashaLord, "Years Remaining", chart.Mahadasha.Current.YearsRemaining})
	f.SetSheetRow(dashaSheet, "A3", &[]interface{}{"Dasha Lord", "From", "To", "Duration (years)"})
	row = 4
	for _, period := range chart.Mahadasha.Sequence {
		f.SetSheetRow(dashaSheet, fmt.Sprintf("A%d", row), &[]interface{}{period.DashaLord, period.From, period.To, period.Duration})
		row++
		// sub-periods indented one column under their major period
		for _, sub := range period.Antardashas {
			f.SetSheetRow(dashaSheet, fmt.Sprintf("B%d", row), &[]interface{}{sub.AntardashaLord, sub.From, sub.To, sub.DurationYears})
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("failed to build chart workbook: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate workbook"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="vedic-chart.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
