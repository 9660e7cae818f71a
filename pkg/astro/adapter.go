package astro

import (
	"sort"
	"strconv"
	"strings"

	"vedic-chart-api/pkg/models"
)

// nodeAliases maps the lunar nodes onto the drawing library's internal
// node names.
var nodeAliases = map[string]string{
	"Rahu": "NNode",
	"Ketu": "SNode",
}

// PlanetSymbols maps planet names to the two-letter abbreviations shown
// inside the chart overlay.
var PlanetSymbols = map[string]string{
	"Sun":     "Su",
	"Moon":    "Mo",
	"Mercury": "Me",
	"Venus":   "Ve",
	"Mars":    "Ma",
	"Jupiter": "Ju",
	"Saturn":  "Sa",
	"Rahu":    "Ra",
	"Ketu":    "Ke",
}

// OverlayPosition is the screen position of one house in the North
// Indian overlay, in percentages of the chart container.
type OverlayPosition struct {
	Top    string `json:"top"`
	Left   string `json:"left"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// HousePositions places houses 1-12 inside the overlay container.
var HousePositions = map[int]OverlayPosition{
	1:  {Top: "18%", Left: "38%", Width: "24%", Height: "15%"},
	2:  {Top: "5%", Left: "17%", Width: "20%", Height: "15%"},
	3:  {Top: "21%", Left: "2%", Width: "20%", Height: "15%"},
	4:  {Top: "44%", Left: "17%", Width: "20%", Height: "15%"},
	5:  {Top: "68%", Left: "2%", Width: "20%", Height: "15%"},
	6:  {Top: "82%", Left: "16%", Width: "21%", Height: "15%"},
	7:  {Top: "70%", Left: "40%", Width: "20%", Height: "15%"},
	8:  {Top: "82%", Left: "63%", Width: "21%", Height: "15%"},
	9:  {Top: "70%", Left: "79%", Width: "20%", Height: "15%"},
	10: {Top: "44%", Left: "63%", Width: "21%", Height: "15%"},
	11: {Top: "21%", Left: "77%", Width: "20%", Height: "15%"},
	12: {Top: "5%", Left: "63%", Width: "21%", Height: "15%"},
}

// BuildRadixChart transforms a calculation result into the input shape
// of the radix drawing library: one degree per planet plus the 12 house
// cusp degrees ordered by house number.
//
// Planets whose degree field does not parse as a number are omitted;
// the library cannot plot an unparseable position and omission beats a
// crash. Rahu and Ketu are renamed to the library's node identifiers.
func BuildRadixChart(chart models.ChartResult) models.RadixChartData {
	houses := make([]models.House, len(chart.Houses))
	copy(houses, chart.Houses)
	sort.Slice(houses, func(i, j int) bool {
		return houses[i].HouseNumber < houses[j].HouseNumber
	})

	planets := make(map[string][]float64)
	cusps := make([]float64, 0, len(houses))

	for _, house := range houses {
		cusp, err := strconv.ParseFloat(strings.TrimSpace(house.StartDegree), 64)
		if err != nil {
			cusp = 0
		}
		cusps = append(cusps, cusp)

		for _, planet := range house.Planets {
			degree, err := strconv.ParseFloat(strings.TrimSpace(planet.Degree), 64)
			if err != nil {
				continue
			}
			name := planet.PlanetName
			if alias, ok := nodeAliases[name]; ok {
				name = alias
			}
			planets[name] = []float64{degree}
		}
	}

	return models.RadixChartData{
		Planets: planets,
		Cusps:   cusps,
	}
}

// GroupPlanetsByHouse builds the overlay grouping: house number to the
// display names of the planets it holds. Every house 1-12 is present,
// empty houses map to an empty slice.
func GroupPlanetsByHouse(chart models.ChartResult) map[int][]string {
	grouped := make(map[int][]string, 12)
	for i := 1; i <= 12; i++ {
		grouped[i] = []string{}
	}

	for _, house := range chart.Houses {
		for _, planet := range house.Planets {
			grouped[house.HouseNumber] = append(grouped[house.HouseNumber], planet.PlanetName)
		}
	}

	return grouped
}
