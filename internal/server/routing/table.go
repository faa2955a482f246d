// Package routing dispatches requests through an immutable route table.
//
// Lookup is an exact string match on method and path. There are no path
// parameters and the query string is ignored. Requests that match nothing
// get a 404 with a small JSON body.
package routing

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/atlanticdynamic/hostfixtures/internal/server/apps"
)

// DefaultCommand is the "command" field of fallback bodies.
const DefaultCommand = "python"

var (
	ErrInvalidRoute   = errors.New("invalid route")
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrNoRoutes       = errors.New("route table is empty")
)

type routeKey struct {
	method string
	path   string
}

// Table is built once and never modified, so it is safe for concurrent use.
type Table struct {
	routes   []Route
	exact    map[routeKey]int
	wildcard map[string]int

	command   string
	preflight bool
	logger    *slog.Logger
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the logger used to report handler errors.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithCommand changes the "command" field of fallback bodies.
func WithCommand(command string) Option {
	return func(t *Table) {
		t.command = command
	}
}

// WithPreflight answers OPTIONS on any path with 204 unless an explicit
// OPTIONS route exists.
func WithPreflight() Option {
	return func(t *Table) {
		t.preflight = true
	}
}

// New validates routes and builds a table. The slice is copied.
func New(routes []Route, opts ...Option) (*Table, error) {
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	t := &Table{
		routes:   make([]Route, len(routes)),
		exact:    make(map[routeKey]int, len(routes)),
		wildcard: make(map[string]int),
		command:  DefaultCommand,
		logger:   slog.Default().WithGroup("routing"),
	}
	copy(t.routes, routes)

	var errs []error
	for i, r := range t.routes {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if r.IsWildcard() {
			if _, dup := t.wildcard[r.Method]; dup {
				errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateRoute, r.ID()))
				continue
			}
			t.wildcard[r.Method] = i
			continue
		}
		key := routeKey{method: r.Method, path: r.Path}
		if _, dup := t.exact[key]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateRoute, r.ID()))
			continue
		}
		t.exact[key] = i
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Lookup finds the route for method and path.
func (t *Table) Lookup(method, path string) (Route, bool) {
	if i, ok := t.exact[routeKey{method: method, path: path}]; ok {
		return t.routes[i], true
	}
	if i, ok := t.wildcard[method]; ok {
		return t.routes[i], true
	}
	return Route{}, false
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Preflight reports whether OPTIONS requests are answered automatically.
func (t *Table) Preflight() bool {
	return t.preflight
}

// ServeHTTP dispatches r to the matching app.
func (t *Table) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route, ok := t.Lookup(r.Method, r.URL.Path)
	if !ok {
		if t.preflight && r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		t.writeFallback(w, http.StatusNotFound)
		return
	}

	tw := &trackingWriter{ResponseWriter: w}
	err := route.App.HandleHTTP(r.Context(), tw, r)
	if err == nil {
		return
	}

	status := apps.StatusFor(err)
	t.logger.Error("Error handling request",
		"route", route.ID(),
		"path", r.URL.Path,
		"app", route.App.String(),
		"status", status,
		"error", err)

	if tw.wrote {
		// headers are already on the wire
		return
	}
	t.writeFallback(w, status)
}

func (t *Table) writeFallback(w http.ResponseWriter, status int) {
	body, err := json.Marshal(fallbackBody{
		Command: t.command,
		Payload: fmt.Sprintf("%d %s", status, http.StatusText(status)),
	})
	if err != nil {
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

type fallbackBody struct {
	Command string `json:"command"`
	Payload string `json:"payload"`
}

// trackingWriter records whether the app has started its response.
type trackingWriter struct {
	http.ResponseWriter
	wrote bool
}

func (w *trackingWriter) WriteHeader(status int) {
	w.wrote = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *trackingWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
