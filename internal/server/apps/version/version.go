// Package version serves the Go runtime version of the fixture process.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
)

// App answers with the runtime version as a JSON string.
type App struct {
	id      string
	version string
	logger  *slog.Logger
}

// New creates a version app. A nil logger uses slog.Default.
func New(id string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		id:      id,
		version: runtime.Version(),
		logger:  logger.WithGroup("version"),
	}
}

// String returns the unique identifier of the application
func (a *App) String() string {
	return a.id
}

// HandleHTTP logs the version and writes it as a JSON string.
func (a *App) HandleHTTP(ctx context.Context, w http.ResponseWriter, _ *http.Request) error {
	a.logger.InfoContext(ctx, "Getting version", "version", a.version)

	body, err := json.Marshal(a.version)
	if err != nil {
		return fmt.Errorf("failed to encode version: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
