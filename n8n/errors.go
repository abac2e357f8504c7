package n8n

import (
	"fmt"
	"net/http"
	"strings"
)

// APIError reports a non-success HTTP status returned by the n8n API.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("n8n API error: %s", e.Status)
}

func newAPIError(resp *http.Response) *APIError {
	status := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if status == "" {
		status = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Status: status}
}
