package main

import (
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/hostfixtures/internal/config"
	"github.com/atlanticdynamic/hostfixtures/internal/logging"
	"github.com/atlanticdynamic/hostfixtures/internal/logging/writers"
)

// setupLogger builds the process logger from cfg and installs it as the
// slog default.
func setupLogger(cfg *config.Config) (*slog.Logger, error) {
	w, err := writers.CreateWriter(cfg.Log.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output: %w", err)
	}
	logger := slog.New(logging.SetupHandler(cfg.Log.Format, cfg.Log.Level, w))
	slog.SetDefault(logger)
	return logger, nil
}
