package app

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

// ParseLogLevel maps a level name to a slog.Level. An empty name means info.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
}

func parseLogFormat(formatStr string) (string, error) {
	switch f := strings.ToLower(formatStr); f {
	case "text", "":
		return "text", nil
	case "json":
		return f, nil
	}
	return "", errors.New("invalid log-format: must be 'text' or 'json'")
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances. The
// configuration is expected to have been validated by NewConfig.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, _ := ParseLogLevel(levelStr)
	format, _ := parseLogFormat(formatStr)

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if format == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
