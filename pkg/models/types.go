package models

import "encoding/json"

// BirthInput represents the birth data submitted by the frontend form.
// Numeric fields are pointers so that a missing value can be told apart
// from a legitimate 0.0 (equator / prime meridian / UTC).
type BirthInput struct {
	FullName  string   `json:"fullName,omitempty"`
	BirthDate string   `json:"birthDate"` // "YYYY-MM-DD"
	BirthTime string   `json:"birthTime"` // "HH:MM"
	Timezone  *float64 `json:"timezone"`  // signed offset in hours, may be fractional (e.g. 5.75)
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CalculationRequest is the payload shape expected by the external
// vedic calculation API.
type CalculationRequest struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"` // 1-12, not zero-indexed
	Day      int     `json:"day"`
	Hour     float64 `json:"hour"` // decimal hour, e.g. 4.55 for 4h33min
	Timezone float64 `json:"timezone"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// ChartResult is the chart returned by the external calculation API.
// The service treats it as opaque apart from the fields the chart
// adapter reads; degrees arrive string-encoded.
type ChartResult struct {
	Ascendant Ascendant `json:"ascendant"`
	Houses    []House   `json:"houses"`
	Nakshatra string    `json:"nakshatra"`
	Mahadasha Mahadasha `json:"mahadasha"`
}

// Ascendant anchors the house numbering of the chart.
type Ascendant struct {
	Degree      string `json:"degree"`
	Sign        string `json:"sign"`
	HouseNumber int    `json:"houseNumber"`
}

// House is one of the 12 sectors of the chart.
type House struct {
	HouseNumber int      `json:"houseNumber"`
	Sign        string   `json:"sign"`
	StartDegree string   `json:"startDegree"`
	EndDegrees  string   `json:"endDegrees"`
	Planets     []Planet `json:"planets"`
}

// Planet is a single placement inside a house.
type Planet struct {
	PlanetName  string `json:"planetName"`
	Degree      string `json:"degree"`
	Nakshatra   string `json:"nakshatra,omitempty"`
	Sign        string `json:"sign"`
	HouseNumber int    `json:"houseNumber"`
}

// Mahadasha holds the current major period and the full sequence.
type Mahadasha struct {
	Current  DashaCurrent  `json:"current"`
	Sequence []DashaPeriod `json:"sequence"`
}

// DashaCurrent is the running major period.
type DashaCurrent struct {
	DashaLord      string `json:"dashaLord"`
	YearsRemaining string `json:"yearsRemaining"`
}

// DashaPeriod is one major period, optionally with its sub-periods.
type DashaPeriod struct {
	DashaLord   string       `json:"dashaLord"`
	Duration    float64      `json:"duration"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	Antardashas []Antardasha `json:"antardashas,omitempty"`
}

// Antardasha is a sub-period within a major period.
type Antardasha struct {
	DashaLord      string `json:"dashaLord"`
	AntardashaLord string `json:"antardashaLord"`
	DurationYears  string `json:"durationYears"`
	From           string `json:"from"`
	To             string `json:"to"`
}

// ChatMessage is one turn of the interpretation conversation. History
// lives only in the client; it travels with every /interpret request.
type ChatMessage struct {
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// InterpretRequest represents an incoming interpretation request.
// ChartData is forwarded to the upstream service untouched.
type InterpretRequest struct {
	Question     string          `json:"question" binding:"required"`
	ChartData    json.RawMessage `json:"chartData" binding:"required"`
	ChatMessages []ChatMessage   `json:"chatMessages,omitempty"`
	Initial      bool            `json:"initial,omitempty"`
	SessionID    string          `json:"session_id,omitempty"` // セッションIDで会話を紐付け
}

// InterpretResponse is returned to the frontend chat.
type InterpretResponse struct {
	Interpretation string `json:"interpretation"`
	SessionID      string `json:"session_id,omitempty"`
}

// GeocodeResult is one candidate from the geocoding search API.
// Nominatim encodes coordinates as strings.
type GeocodeResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// RadixChartData is the input shape of the radix drawing library:
// planet display name to a single-element degree slice, plus the 12
// house cusp degrees ordered by house number.
type RadixChartData struct {
	Planets map[string][]float64 `json:"planets"`
	Cusps   []float64            `json:"cusps"`
}

// RenderedChart bundles the drawing-library input with the overlay
// grouping used by the North Indian style presentation.
type RenderedChart struct {
	Radix        RadixChartData   `json:"radix"`
	HousePlanets map[int][]string `json:"housePlanets"`
}
