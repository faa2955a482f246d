package routing

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atlanticdynamic/hostfixtures/internal/server/apps"
)

// AnyPath in a route's Path matches every request path for that method.
// Exact routes always take precedence over AnyPath routes.
const AnyPath = "*"

// Route binds one method and path to an app.
type Route struct {
	Method string
	Path   string
	App    apps.App
}

// ID identifies the route within a table, e.g. "GET /users".
func (r Route) ID() string {
	return r.Method + " " + r.Path
}

// IsWildcard reports whether the route matches any path.
func (r Route) IsWildcard() bool {
	return r.Path == AnyPath
}

// Validate checks that the route can be placed in a table.
func (r Route) Validate() error {
	if r.Method == "" {
		return fmt.Errorf("%w: empty method for path %q", ErrInvalidRoute, r.Path)
	}
	if strings.ToUpper(r.Method) != r.Method {
		return fmt.Errorf("%w: method %q must be upper case", ErrInvalidRoute, r.Method)
	}
	if r.Path != AnyPath && !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: path %q must start with / or be %s", ErrInvalidRoute, r.Path, AnyPath)
	}
	if r.App == nil {
		return fmt.Errorf("%w: %s has no app", ErrInvalidRoute, r.ID())
	}
	return nil
}

// Get is shorthand for a GET route.
func Get(path string, app apps.App) Route {
	return Route{Method: http.MethodGet, Path: path, App: app}
}

// Post is shorthand for a POST route.
func Post(path string, app apps.App) Route {
	return Route{Method: http.MethodPost, Path: path, App: app}
}
