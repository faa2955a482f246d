package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupHandlerText_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		debugOn   bool
		infoOn    bool
		warnOn    bool
		errorOnly bool
	}{
		{level: "trace", debugOn: true, infoOn: true, warnOn: true},
		{level: "debug", debugOn: true, infoOn: true, warnOn: true},
		{level: "info", infoOn: true, warnOn: true},
		{level: "INFO", infoOn: true, warnOn: true},
		{level: "", infoOn: true, warnOn: true},
		{level: "warning", warnOn: true},
		{level: "warn", warnOn: true},
		{level: "error", errorOnly: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			t.Parallel()
			h := SetupHandlerText(tt.level, &bytes.Buffer{})
			ctx := context.Background()
			assert.Equal(t, tt.debugOn, h.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.infoOn, h.Enabled(ctx, slog.LevelInfo))
			assert.Equal(t, tt.warnOn, h.Enabled(ctx, slog.LevelWarn))
			assert.True(t, h.Enabled(ctx, slog.LevelError))
		})
	}
}

func TestSetupHandlerText_Output(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(SetupHandlerText("info", &buf))
	logger.Info("Server started", "address", "localhost:8000")

	out := buf.String()
	assert.Contains(t, out, "Server started")
	assert.Contains(t, out, "localhost:8000")
}

func TestSetupHandlerJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(SetupHandlerJSON("debug", &buf))
	logger.Debug("Getting version", "version", "go1.26")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Getting version", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "go1.26", entry["version"])
	assert.NotContains(t, entry, "source")
}

func TestSetupHandlerJSON_TraceAddsSource(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	slog.New(SetupHandlerJSON("trace", &buf)).Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, "source")
}

func TestSetupHandler_FormatSelection(t *testing.T) {
	t.Parallel()

	var jsonBuf, textBuf bytes.Buffer
	slog.New(SetupHandler("JSON", "info", &jsonBuf)).Info("formatted")
	slog.New(SetupHandler("text", "info", &textBuf)).Info("formatted")

	assert.True(t, json.Valid(bytes.TrimSpace(jsonBuf.Bytes())))
	assert.False(t, json.Valid(bytes.TrimSpace(textBuf.Bytes())))
	assert.Contains(t, textBuf.String(), "formatted")
}

func TestSetupLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	SetupLogger("debug")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	SetupLogger("error")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("Debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
}

func TestValidLevel(t *testing.T) {
	t.Parallel()
	for _, lvl := range []string{"", "trace", "DEBUG", "info", "warn", "warning", "error"} {
		assert.True(t, ValidLevel(lvl), lvl)
	}
	assert.False(t, ValidLevel("verbose"))
}
