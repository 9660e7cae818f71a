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

// InterpretationService calls the external chart interpretation API.
type InterpretationService struct {
	endpoint   string
	httpClient *http.Client
}

// NewInterpretationService creates a client for the interpretation API.
func NewInterpretationService(endpoint string) *InterpretationService {
	return &InterpretationService{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// interpretPayload is the wire shape sent upstream. Chart data passes
// through untouched; history content is sanitized first.
type interpretPayload struct {
	Question     string               `json:"question"`
	ChartData    json.RawMessage      `json:"chartData"`
	ChatMessages []models.ChatMessage `json:"chatMessages,omitempty"`
	Initial      bool                 `json:"initial,omitempty"`
}

// Interpret forwards a question about a computed chart to the
// interpretation API and returns the interpretation text. The response
// is awaited in full; there is no streaming and no retry.
func (s *InterpretationService) Interpret(ctx context.Context, req models.InterpretRequest) (string, error) {
	var history []models.ChatMessage
	if len(req.ChatMessages) > 0 {
		history = make([]models.ChatMessage, len(req.ChatMessages))
		for i, msg := range req.ChatMessages {
			msg.Content = SanitizeMessage(msg.Content)
			history[i] = msg
		}
	}

	payload := interpretPayload{
		Question:     req.Question,
		ChartData:    req.ChartData,
		ChatMessages: history,
		Initial:      req.Initial,
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode interpretation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("malformed interpretation response: %w", err)}
	}

	raw, ok := fields["interpretation"]
	if !ok {
		return "", &ResponseShapeError{Field: "interpretation"}
	}

	var interpretation string
	if err := json.Unmarshal(raw, &interpretation); err != nil {
		return "", &ResponseShapeError{Field: "interpretation"}
	}

	return interpretation, nil
}
