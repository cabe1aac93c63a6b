package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/cotravel-backend/internal/config"
)

const serviceName = "cotravel-settlement"

// Attribute keys whose values never reach the log output. Signed envelopes
// are replaced by their length so a failed submission can still be matched
// against the client payload.
var redactedKeys = map[string]bool{
	"signed_xdr":    true,
	"authorization": true,
	"token":         true,
	"jwt_secret":    true,
}

// NewLogger builds the process logger from cfg, writes to stderr and installs
// it as the slog default. Every record carries the service name.
//
// Format "json" is meant for production; "text" adds source locations.
// Level is one of debug, info, warn, error (case-insensitive), default info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(slog.String("service", serviceName))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: redact,
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if !redactedKeys[strings.ToLower(a.Key)] {
		return a
	}
	n := len(a.Value.String())
	if n == 0 {
		return a
	}
	return slog.String(a.Key, fmt.Sprintf("[redacted %d bytes]", n))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
