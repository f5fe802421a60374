package lmstudio

import "strings"

// DefaultHost is where LM Studio listens out of the box.
const DefaultHost = "http://localhost:1234"

// API paths relative to the base URL.
const (
	ModelsPath          = "/api/v0/models"
	ChatCompletionsPath = "/v1/chat/completions"
)

// NormalizeBaseURL prefixes http:// when no scheme is given and strips
// trailing slashes so paths can be appended directly.
func NormalizeBaseURL(host string) string {
	h := strings.TrimSpace(host)
	if h == "" {
		return DefaultHost
	}
	if !strings.HasPrefix(h, "http://") && !strings.HasPrefix(h, "https://") {
		h = "http://" + h
	}
	return strings.TrimRight(h, "/")
}
