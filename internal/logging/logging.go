// Package logging builds the zerolog loggers used by the CLI and the HTTP service.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"lmnode/internal/common/fsutil"
)

// Rotation limits for file output.
const (
	maxSizeMB  = 50
	maxBackups = 5
	maxAgeDays = 28
)

// ParseLevel maps a level name onto zerolog; unknown names mean info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New returns a JSON logger at level. With a non-empty file, output goes to
// a size-rotated file instead of stderr.
func New(level, file string) (zerolog.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if file != "" {
		p, err := fsutil.EnsureParentDir(file)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		lj := &lumberjack.Logger{
			Filename:   p,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		w, closer = lj, lj
	}
	return NewWithWriter(w, level), closer, nil
}

// NewWithWriter returns a logger at level writing to w.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Str("service", "lmnode").Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
