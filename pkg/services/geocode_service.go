package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"vedic-chart-api/pkg/models"
)

// GeocodeService queries the geocoding search API used by the location
// picker. The upstream is Nominatim-compatible: GET ?q=&limit= returning
// an ordered list of display_name/lat/lon candidates.
type GeocodeService struct {
	endpoint   string
	httpClient *http.Client
}

// NewGeocodeService creates a client for the geocoding search API.
func NewGeocodeService(endpoint string) *GeocodeService {
	return &GeocodeService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search looks up place candidates for a free-text query.
func (s *GeocodeService) Search(ctx context.Context, query string, limit int) ([]models.GeocodeResult, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid geocode endpoint: %w", err)
	}

	params := u.Query()
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "vedic-chart-api/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var results []models.GeocodeResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("malformed geocode response: %w", err)}
	}

	return results, nil
}
