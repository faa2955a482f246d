package logger

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/robbyt/go-loglater"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attrMap(attrs []slog.Attr) map[string]slog.Value {
	out := make(map[string]slog.Value, len(attrs))
	for _, a := range attrs {
		out[a.Key] = a.Value
	}
	return out
}

// httpAttrs returns the attributes logged under the "http" group.
func httpAttrs(t *testing.T, attrs []slog.Attr) map[string]slog.Value {
	t.Helper()
	group, ok := attrMap(attrs)["http"]
	require.True(t, ok, "record has no http group: %v", attrs)
	require.Equal(t, slog.KindGroup, group.Kind())
	return attrMap(group.Group())
}

func TestConsoleLogger_Middleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		level  slog.Level
	}{
		{name: "ok is info", status: http.StatusOK, level: slog.LevelInfo},
		{name: "not found is warn", status: http.StatusNotFound, level: slog.LevelWarn},
		{name: "server error is error", status: http.StatusInternalServerError, level: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			collector := loglater.NewLogCollector(nil)
			cl := NewConsoleLogger(slog.New(collector))

			route, err := httpserver.NewRouteFromHandlerFunc("test", "/users",
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte("[{},{},{}]"))
				}, cl.Middleware())
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.Header.Set("X-Request-Id", "abc-123")
			rec := httptest.NewRecorder()
			route.ServeHTTP(rec, req)

			logs := collector.GetLogs()
			require.Len(t, logs, 1)
			assert.Equal(t, "HTTP request", logs[0].Message)
			assert.Equal(t, tt.level, logs[0].Level)

			attrs := httpAttrs(t, logs[0].Attrs)
			assert.Equal(t, "GET", attrs["method"].String())
			assert.Equal(t, "/users", attrs["path"].String())
			require.Equal(t, slog.KindInt64, attrs["status"].Kind())
			assert.Equal(t, int64(tt.status), attrs["status"].Int64())
			require.Equal(t, slog.KindInt64, attrs["body_size"].Kind())
			assert.Equal(t, int64(len("[{},{},{}]")), attrs["body_size"].Int64())
			assert.Equal(t, slog.KindDuration, attrs["duration"].Kind())
			assert.Equal(t, "abc-123", attrs["request_id"].String())
			assert.Contains(t, attrs, "client_ip")
		})
	}
}

func TestConsoleLogger_ExcludePaths(t *testing.T) {
	t.Parallel()
	collector := loglater.NewLogCollector(nil)
	cl := NewConsoleLogger(slog.New(collector), WithExcludePaths("/health"))

	route, err := httpserver.NewRouteFromHandlerFunc("test", "/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}, cl.Middleware())
	require.NoError(t, err)

	route.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Empty(t, collector.GetLogs())

	route.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, collector.GetLogs(), 1)
}

func TestLevelFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelInfo, levelFor(204))
	assert.Equal(t, slog.LevelInfo, levelFor(399))
	assert.Equal(t, slog.LevelWarn, levelFor(413))
	assert.Equal(t, slog.LevelError, levelFor(503))
}

func TestSkipPathByPrefixes(t *testing.T) {
	t.Parallel()
	assert.False(t, skipPathByPrefixes("/users", nil))
	assert.True(t, skipPathByPrefixes("/health", []string{"/he"}))
	assert.False(t, skipPathByPrefixes("/users", []string{"/health"}))
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{name: "forwarded list", headers: map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, remote: "1.1.1.1:1", expected: "10.0.0.1"},
		{name: "forwarded single", headers: map[string]string{"X-Forwarded-For": "10.0.0.3"}, remote: "1.1.1.1:1", expected: "10.0.0.3"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "10.0.0.4"}, remote: "1.1.1.1:1", expected: "10.0.0.4"},
		{name: "remote addr", remote: "192.168.1.9:5555", expected: "192.168.1.9"},
		{name: "remote without port", remote: "pipe", expected: "pipe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, clientIP(req))
		})
	}
}
