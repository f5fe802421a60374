package lmstudio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrMalformedResponse is wrapped by errors returned when a 2xx body cannot be decoded.
var ErrMalformedResponse = errors.New("malformed response body")

// StatusError reports a non-2xx answer from LM Studio.
type StatusError struct {
	StatusCode int
	Status     string
	// Message is the upstream error text when the body carried one.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return "HTTP " + e.Status
	}
	return "HTTP " + e.Status + ": " + e.Message
}

// IsStatusError reports whether err is (or wraps) a StatusError.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

func newStatusError(resp *http.Response) *StatusError {
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return &StatusError{
		StatusCode: resp.StatusCode,
		Status:     status,
		Message:    extractErrorMessage(resp.Body),
	}
}

// extractErrorMessage understands both {"error":{"message":...}} and
// {"error":"..."}; anything else falls back to the trimmed raw body.
func extractErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Error) > 0 {
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
		var s string
		if err := json.Unmarshal(envelope.Error, &s); err == nil && s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(data))
}
