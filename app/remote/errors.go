package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError is returned for every non-2xx backend response.
type HTTPError struct {
	Status  int
	Message string
	// Payload is the decoded JSON body, or the raw body text when it is not JSON.
	Payload interface{}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// IsStatus reports whether err is an HTTPError with the given status.
func IsStatus(err error, status int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == status
}

func newHTTPError(status int, body []byte) *HTTPError {
	he := &HTTPError{Status: status}

	var payload interface{}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		he.Payload = payload
		if obj, ok := payload.(map[string]interface{}); ok {
			if msg, ok := obj["message"].(string); ok && strings.TrimSpace(msg) != "" {
				he.Message = msg
			}
		}
	} else if len(body) > 0 {
		he.Payload = string(body)
	}

	if he.Message == "" {
		he.Message = http.StatusText(status)
	}
	if he.Message == "" {
		he.Message = fmt.Sprintf("request failed with status %d", status)
	}
	return he
}
