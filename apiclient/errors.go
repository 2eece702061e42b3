package apiclient

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// APIError is returned when an upstream service answers with an unexpected status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message())
}

// Message returns the upstream's error message, or the raw body when it is not JSON
func (e *APIError) Message() string {
	for _, path := range []string{"error", "message", "details"} {
		if msg := gjson.Get(e.Body, path); msg.Type == gjson.String && msg.String() != "" {
			return msg.String()
		}
	}
	if e.Body == "" {
		return http.StatusText(e.StatusCode)
	}
	return e.Body
}
