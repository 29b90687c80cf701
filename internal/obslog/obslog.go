// Package obslog configures structured logging for cmd/annacli, adapted
// from the teacher's util.InitSlog.
package obslog

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures slog based on the LOG_LEVEL environment variable.
// Supported levels: debug, info, warn, error.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return
	}

	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
