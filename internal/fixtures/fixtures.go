// Package fixtures is the catalogue of servers the binary can run.
//
// Each fixture pairs a fixed route table with a CORS policy and the host
// and port it listens on when nothing else is configured.
package fixtures

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/atlanticdynamic/hostfixtures/internal/config"
	"github.com/atlanticdynamic/hostfixtures/internal/config/errz"
	"github.com/atlanticdynamic/hostfixtures/internal/server/middleware/headers"
	"github.com/atlanticdynamic/hostfixtures/internal/server/routing"
)

// Fixture describes one runnable server.
type Fixture struct {
	Name        string
	Description string
	Defaults    config.Defaults
	Policy      headers.Policy

	// Preflight answers OPTIONS on any path with 204.
	Preflight bool

	routes func(cfg *config.Config, logger *slog.Logger) ([]routing.Route, error)
}

// Table builds the fixture's route table from cfg.
func (f *Fixture) Table(cfg *config.Config, logger *slog.Logger) (*routing.Table, error) {
	if f.routes == nil {
		return nil, fmt.Errorf("fixture %q has no routes", f.Name)
	}
	if logger == nil {
		logger = slog.Default()
	}

	routes, err := f.routes(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build routes for %s: %w", f.Name, err)
	}

	opts := []routing.Option{routing.WithLogger(logger.WithGroup("routing"))}
	if f.Preflight {
		opts = append(opts, routing.WithPreflight())
	}
	return routing.New(routes, opts...)
}

// NewConfig returns a config preloaded with this fixture's defaults.
func (f *Fixture) NewConfig() *config.Config {
	return config.NewConfig(f.Name, f.Defaults)
}

// Lookup returns the fixture called name.
func Lookup(name string) (*Fixture, error) {
	for _, f := range catalog() {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", errz.ErrUnknownFixture, name, Names())
}

// Names lists every fixture name, sorted.
func Names() []string {
	all := catalog()
	names := make([]string, 0, len(all))
	for _, f := range all {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// All returns every fixture sorted by name.
func All() []*Fixture {
	all := catalog()
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// methods covered by fixtures that answer any request.
var anyMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}
