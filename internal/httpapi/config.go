package httpapi

import "lmnode/internal/node"

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// executeTimeout bounds a whole /execute batch, in seconds. Zero leaves
// only the per-item timeout_seconds parameter in effect.
var executeTimeout = int64(0)

// SetExecuteTimeoutSeconds sets the batch timeout in seconds (0 disables).
func SetExecuteTimeoutSeconds(sec int64) {
	if sec < 0 {
		sec = 0
	}
	executeTimeout = sec
}

// defaultParams are the node parameters /execute starts from before applying
// the request's own params.
var defaultParams = node.DefaultParams()

// SetDefaultParams replaces the server-side node parameter defaults.
func SetDefaultParams(p node.Params) { defaultParams = p }

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}
