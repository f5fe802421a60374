package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is the structured logger used by the HTTP layer. Silent until SetLogger.
var zlog = zerolog.Nop()

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "off", "disabled", "":
		return LevelOff
	case "error", "warn", "warning":
		return LevelError
	case "info":
		return LevelInfo
	case "debug", "trace":
		return LevelDebug
	default:
		return LevelInfo
	}
}

var defaultLogLevel = LevelInfo

// SetRequestLogLevel sets the per-request log level used when a request
// carries no override.
func SetRequestLogLevel(s string) { defaultLogLevel = parseLevel(s) }

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

func requestEvent(r *http.Request, ev *zerolog.Event) *zerolog.Event {
	ev = ev.Str("path", r.URL.Path)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		ev = ev.Str("request_id", rid)
	}
	return ev
}

// logExecuteEnd records the outcome of an /execute call. Failures are
// logged at error level so LevelError still reports them.
func logExecuteEnd(r *http.Request, lvl LogLevel, status int, start time.Time, err error) {
	switch {
	case err != nil && lvl >= LevelError:
		requestEvent(r, zlog.Error()).Int("status", status).Dur("dur", time.Since(start)).Err(err).Msg("execute end")
	case err == nil && lvl >= LevelInfo:
		requestEvent(r, zlog.Info()).Int("status", status).Dur("dur", time.Since(start)).Msg("execute end")
	}
}
