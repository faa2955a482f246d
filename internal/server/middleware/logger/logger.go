// Package logger writes one structured log record per HTTP request.
package logger

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/atlanticdynamic/hostfixtures/internal/server/middleware/requestid"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// lgr is implemented by slog.Logger
type lgr interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// ConsoleLogger logs method, path, status and timing for each request.
type ConsoleLogger struct {
	logger       lgr
	excludePaths []string
}

// Option configures a ConsoleLogger.
type Option func(*ConsoleLogger)

// WithExcludePaths skips requests whose path starts with any prefix.
func WithExcludePaths(prefixes ...string) Option {
	return func(cl *ConsoleLogger) {
		cl.excludePaths = append(cl.excludePaths, prefixes...)
	}
}

// NewConsoleLogger creates the middleware. A nil logger uses slog.Default.
func NewConsoleLogger(logger *slog.Logger, opts ...Option) *ConsoleLogger {
	if logger == nil {
		logger = slog.Default()
	}
	cl := &ConsoleLogger{logger: logger.WithGroup("http")}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Middleware returns the middleware function
func (cl *ConsoleLogger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		if skipPathByPrefixes(r.URL.Path, cl.excludePaths) {
			rp.Next()
			return
		}

		start := time.Now()
		rp.Next()

		rw := rp.Writer()
		status := rw.Status()
		if status == 0 {
			status = http.StatusOK
		}

		attrs := []slog.Attr{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", clientIP(r)),
			slog.Int("body_size", rw.Size()),
		}
		if id := requestID(r, rw); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		cl.logger.LogAttrs(r.Context(), levelFor(status), "HTTP request", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func skipPathByPrefixes(path string, excludePrefixes []string) bool {
	for _, prefix := range excludePrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func requestID(r *http.Request, w http.ResponseWriter) string {
	if id := r.Header.Get(requestid.HeaderName); id != "" {
		return id
	}
	return w.Header().Get(requestid.HeaderName)
}

// clientIP prefers proxy headers, then the connection's remote address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
		return r.RemoteAddr[:idx]
	}
	return r.RemoteAddr
}
