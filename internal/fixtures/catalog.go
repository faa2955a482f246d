package fixtures

import (
	"log/slog"

	"github.com/atlanticdynamic/hostfixtures/internal/config"
	"github.com/atlanticdynamic/hostfixtures/internal/server/apps/echo"
	"github.com/atlanticdynamic/hostfixtures/internal/server/apps/numeric"
	"github.com/atlanticdynamic/hostfixtures/internal/server/apps/openapi"
	"github.com/atlanticdynamic/hostfixtures/internal/server/apps/static"
	"github.com/atlanticdynamic/hostfixtures/internal/server/apps/version"
	"github.com/atlanticdynamic/hostfixtures/internal/server/middleware/headers"
	"github.com/atlanticdynamic/hostfixtures/internal/server/routing"
)

// RootPayload is the body of GET / on the python fixture.
var RootPayload = map[string]any{"command": "python", "payload": true}

// catalog builds fresh fixture values on every call so callers cannot
// alter each other's view.
func catalog() []*Fixture {
	return []*Fixture{
		{
			Name:        "python",
			Description: "GET / answers a fixed command payload; everything else is a JSON 404",
			Defaults:    config.Defaults{Host: "0.0.0.0", Port: 8000},
			Policy:      headers.PolicyOrigin,
			routes:      pythonRoutes,
		},
		{
			Name:        "flask",
			Description: "OpenAPI file, runtime version, user stub and JSON echo",
			Defaults:    config.Defaults{Host: "localhost", Port: 8080},
			Policy:      headers.PolicyOrigin,
			Preflight:   true,
			routes:      flaskRoutes,
		},
		{
			Name:        "secret",
			Description: "GET returns SECRET_VARIABLE as text; POST echoes the raw body",
			Defaults:    config.Defaults{Host: "", Port: 8000},
			Policy:      headers.PolicyFull,
			Preflight:   true,
			routes:      secretRoutes,
		},
		{
			Name:        "numeric",
			Description: "GET runs vector operations; POST echoes the raw body",
			Defaults:    config.Defaults{Host: "", Port: 8000},
			Policy:      headers.PolicyFull,
			Preflight:   true,
			routes:      numericRoutes,
		},
		{
			Name:        "express",
			Description: "POST /echo echoes JSON; any GET says Hello World",
			Defaults:    config.Defaults{Host: "localhost", Port: 3000},
			Policy:      headers.PolicyOrigin,
			Preflight:   true,
			routes:      expressRoutes,
		},
		{
			Name:        "jsonecho",
			Description: "Any request body is parsed and re-encoded as compact JSON",
			Defaults:    config.Defaults{Host: "localhost", Port: 8080},
			Policy:      headers.PolicyJSONEcho,
			Preflight:   true,
			routes:      jsonEchoRoutes,
		},
	}
}

func pythonRoutes(_ *config.Config, _ *slog.Logger) ([]routing.Route, error) {
	root, err := static.NewJSON("root", RootPayload)
	if err != nil {
		return nil, err
	}
	return []routing.Route{routing.Get("/", root)}, nil
}

func flaskRoutes(cfg *config.Config, logger *slog.Logger) ([]routing.Route, error) {
	users, err := static.NewJSON("users", []struct{}{{}, {}, {}})
	if err != nil {
		return nil, err
	}
	return []routing.Route{
		routing.Get("/.commoners", openapi.New("openapi", cfg.OpenAPIPath)),
		routing.Get("/version", version.New("version", logger)),
		routing.Get("/users", users),
		routing.Post("/echo", echo.NewJSON("echo")),
	}, nil
}

func secretRoutes(cfg *config.Config, _ *slog.Logger) ([]routing.Route, error) {
	return []routing.Route{
		routing.Get(routing.AnyPath, static.NewText("secret", cfg.Secret)),
		routing.Post(routing.AnyPath, echo.NewRaw("echo")),
	}, nil
}

func numericRoutes(_ *config.Config, logger *slog.Logger) ([]routing.Route, error) {
	return []routing.Route{
		routing.Get(routing.AnyPath, numeric.New("numeric", logger)),
		routing.Post(routing.AnyPath, echo.NewRaw("echo")),
	}, nil
}

func expressRoutes(_ *config.Config, _ *slog.Logger) ([]routing.Route, error) {
	return []routing.Route{
		routing.Post("/echo", echo.NewJSON("echo")),
		routing.Get(routing.AnyPath, static.NewText("hello", "Hello World")),
	}, nil
}

func jsonEchoRoutes(_ *config.Config, _ *slog.Logger) ([]routing.Route, error) {
	app := echo.NewReencode("jsonecho")
	routes := make([]routing.Route, 0, len(anyMethods))
	for _, m := range anyMethods {
		routes = append(routes, routing.Route{Method: m, Path: routing.AnyPath, App: app})
	}
	return routes, nil
}
