// Package httpserver runs a fixture's route table on a go-supervisor HTTP runner.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*HTTPServer)(nil)
	_ supervisor.Stateable = (*HTTPServer)(nil)
)

// StateRunning is reported by GetState once the listener is accepting.
const StateRunning = "Running"

// ErrNilHandler is returned when no handler is supplied.
var ErrNilHandler = errors.New("handler cannot be nil")

// HTTPTimeoutOptions contains timeout configuration for the HTTP server
type HTTPTimeoutOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}

// DefaultTimeouts suit a local fixture talking to a single host process.
func DefaultTimeouts() HTTPTimeoutOptions {
	return HTTPTimeoutOptions{
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		DrainTimeout: 5 * time.Second,
	}
}

// serverImplementation abstracts the go-supervisor runner for tests.
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsRunning() bool
	GetStateChan(ctx context.Context) <-chan string
}

// HTTPServer serves one handler on one address. The handler is mounted as
// a single catch-all route so that path matching stays with the handler.
type HTTPServer struct {
	id      string
	address string
	server  serverImplementation

	logger   *slog.Logger
	route    httpserver.Route
	timeouts HTTPTimeoutOptions
}

// NewHTTPServer creates a server for handler. Middlewares run in order
// before the handler.
func NewHTTPServer(
	id, address string,
	handler http.Handler,
	middlewares []httpserver.HandlerFunc,
	timeouts HTTPTimeoutOptions,
	logger *slog.Logger,
) (*HTTPServer, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if logger == nil {
		logger = slog.Default().WithGroup("httpserver").With("id", id)
	}

	route, err := httpserver.NewRouteFromHandlerFunc(id, "/", handler.ServeHTTP, middlewares...)
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	s := &HTTPServer{
		id:       id,
		address:  address,
		route:    *route,
		timeouts: timeouts,
		logger:   logger,
	}
	if err := s.initializeRunner(); err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP server runner: %w", err)
	}
	return s, nil
}

func (s *HTTPServer) initializeRunner() error {
	configCallback := func() (*httpserver.Config, error) {
		var options []httpserver.ConfigOption
		if s.timeouts.ReadTimeout > 0 {
			options = append(options, httpserver.WithReadTimeout(s.timeouts.ReadTimeout))
		}
		if s.timeouts.WriteTimeout > 0 {
			options = append(options, httpserver.WithWriteTimeout(s.timeouts.WriteTimeout))
		}
		if s.timeouts.IdleTimeout > 0 {
			options = append(options, httpserver.WithIdleTimeout(s.timeouts.IdleTimeout))
		}
		if s.timeouts.DrainTimeout > 0 {
			options = append(options, httpserver.WithDrainTimeout(s.timeouts.DrainTimeout))
		}

		config, err := httpserver.NewConfig(s.address, []httpserver.Route{s.route}, options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
		}
		return config, nil
	}

	runner, err := httpserver.NewRunner(httpserver.WithConfigCallback(configCallback))
	if err != nil {
		return fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	s.server = runner
	return nil
}

// String returns a unique identifier for this server
func (s *HTTPServer) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.id)
}

// Run blocks serving requests until ctx is cancelled or Stop is called.
func (s *HTTPServer) Run(ctx context.Context) error {
	s.logger.Debug("Starting HTTP server", "address", s.address)
	return s.server.Run(ctx)
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	s.logger.Debug("Stopping HTTP server", "address", s.address)
	s.server.Stop()
}

// GetState returns the current state of the server
func (s *HTTPServer) GetState() string {
	if s.server == nil {
		return "unknown"
	}
	return s.server.GetState()
}

// IsRunning returns whether the server is running
func (s *HTTPServer) IsRunning() bool {
	if s.server == nil {
		return false
	}
	return s.server.IsRunning()
}

// GetStateChan returns a channel that emits state changes
func (s *HTTPServer) GetStateChan(ctx context.Context) <-chan string {
	if s.server == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return s.server.GetStateChan(ctx)
}

// WaitForRunning blocks until the server reports StateRunning, ctx ends,
// or the state channel closes.
func (s *HTTPServer) WaitForRunning(ctx context.Context) error {
	if s.GetState() == StateRunning {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	states := s.GetStateChan(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case state, ok := <-states:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				return fmt.Errorf("%s stopped before reaching %s", s, StateRunning)
			}
			if state == StateRunning {
				return nil
			}
		}
	}
}

// GetID returns the ID of this HTTP server
func (s *HTTPServer) GetID() string {
	return s.id
}

// GetAddress returns the address this server listens on
func (s *HTTPServer) GetAddress() string {
	return s.address
}
