// Package server assembles and runs one fixture under go-supervisor.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/hostfixtures/internal/config"
	"github.com/atlanticdynamic/hostfixtures/internal/fixtures"
	"github.com/atlanticdynamic/hostfixtures/internal/server/httpserver"
	"github.com/atlanticdynamic/hostfixtures/internal/server/middleware/headers"
	reqlog "github.com/atlanticdynamic/hostfixtures/internal/server/middleware/logger"
	"github.com/atlanticdynamic/hostfixtures/internal/server/middleware/requestid"
	supervisorHTTP "github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Build wires the fixture's route table, middleware chain and HTTP runner
// for cfg. Middlewares run in order: request id, request logging, CORS.
func Build(
	cfg *config.Config,
	fixture *fixtures.Fixture,
	logger *slog.Logger,
) (*httpserver.HTTPServer, error) {
	if cfg == nil || fixture == nil {
		return nil, errors.New("config and fixture are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	table, err := fixture.Table(cfg, logger)
	if err != nil {
		return nil, err
	}

	cors, err := headers.NewCORSMiddleware(fixture.Policy)
	if err != nil {
		return nil, fmt.Errorf("failed to create CORS middleware: %w", err)
	}

	middlewares := []supervisorHTTP.HandlerFunc{
		requestid.New(requestid.NewV6).Middleware(),
		reqlog.NewConsoleLogger(logger).Middleware(),
		cors.Middleware(),
	}

	return httpserver.NewHTTPServer(
		fixture.Name,
		cfg.Address(),
		table,
		middlewares,
		httpserver.DefaultTimeouts(),
		logger.WithGroup("httpserver").With("fixture", fixture.Name),
	)
}

// Run serves fixture until ctx is cancelled or the process receives a
// termination signal. The startup line is logged once the listener is up.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Config,
	fixture *fixtures.Fixture,
) error {
	if logger == nil {
		logger = slog.Default()
	}

	srv, err := Build(cfg, fixture, logger)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithRunnables(srv),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}

	announceCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go announce(announceCtx, logger, srv, cfg)

	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}

func announce(ctx context.Context, logger *slog.Logger, srv *httpserver.HTTPServer, cfg *config.Config) {
	if err := srv.WaitForRunning(ctx); err != nil {
		if ctx.Err() == nil {
			logger.Warn("Server did not reach running state", "error", err)
		}
		return
	}
	logger.Info("Server started at "+cfg.URL(), "fixture", cfg.Fixture, "address", cfg.Address())
}
