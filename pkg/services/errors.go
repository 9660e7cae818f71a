package services

import "fmt"

// UpstreamError reports a failed call to an external service: either a
// non-2xx response (StatusCode and Body are set) or a transport-level
// failure (StatusCode is 0 and Err carries the cause).
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream service returned status %d: %s", e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("upstream service call failed: %v", e.Err)
	}
	return "upstream service call failed"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ResponseShapeError reports a 2xx upstream response whose body is
// missing an expected field. It indicates contract drift rather than a
// transport failure, so callers log it separately.
type ResponseShapeError struct {
	Field string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("upstream response did not contain a valid %q field", e.Field)
}
