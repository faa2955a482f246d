// Package openapi serves a service description file from disk.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/atlanticdynamic/hostfixtures/internal/server/apps"
)

// App reads the file on every request so edits show up without a restart.
type App struct {
	id   string
	path string
}

// New creates an app serving the file at path.
func New(id, path string) *App {
	return &App{id: id, path: path}
}

// String returns the unique identifier of the application
func (a *App) String() string {
	return a.id
}

// Path returns the file this app serves.
func (a *App) Path() string {
	return a.path
}

// HandleHTTP writes the file verbatim. A missing file yields apps.ErrNotFound.
func (a *App) HandleHTTP(_ context.Context, w http.ResponseWriter, _ *http.Request) error {
	data, err := os.ReadFile(a.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", apps.ErrNotFound, a.path)
		}
		return fmt.Errorf("failed to read %s: %w", a.path, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
