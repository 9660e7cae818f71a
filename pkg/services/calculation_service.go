package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vedic-chart-api/pkg/models"
)

// CalculationService calls the external vedic chart calculation API.
type CalculationService struct {
	endpoint   string
	httpClient *http.Client
}

// NewCalculationService creates a client for the calculation API.
func NewCalculationService(endpoint string) *CalculationService {
	return &CalculationService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Calculate posts the normalized birth payload to the calculation API
// and returns the chart body unchanged. The body is unmarshalled once
// to confirm it is a well-formed chart before being passed through.
// No retry and no caching: every call is an independent upstream call.
func (s *CalculationService) Calculate(ctx context.Context, req models.CalculationRequest) (json.RawMessage, error) {
	requestBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode calculation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
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

	var chart models.ChartResult
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("malformed chart response: %w", err)}
	}

	return body, nil
}
