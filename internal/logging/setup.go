// Package logging builds the slog handlers used by the fixture servers.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Output formats accepted by SetupHandler.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// SetupHandlerText returns a charmbracelet text handler writing to writer.
// Trace adds caller and timestamps, debug adds timestamps only.
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
	})
}

// SetupHandlerJSON returns a JSON handler writing to writer.
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(logLevel),
		AddSource: strings.EqualFold(logLevel, "trace"),
	}
	return slog.NewJSONHandler(writer, opts)
}

// SetupHandler picks the text or JSON handler. Unknown formats fall back to text.
func SetupHandler(format, logLevel string, writer io.Writer) slog.Handler {
	if strings.EqualFold(format, FormatJSON) {
		return SetupHandlerJSON(logLevel, writer)
	}
	return SetupHandlerText(logLevel, writer)
}

// SetupLogger installs a text handler at logLevel as the slog default.
func SetupLogger(logLevel string) {
	slog.SetDefault(slog.New(SetupHandlerText(logLevel, nil)))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "trace", "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether logLevel is one of the recognized names. The
// empty string is accepted and means info.
func ValidLevel(logLevel string) bool {
	switch strings.ToLower(logLevel) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
