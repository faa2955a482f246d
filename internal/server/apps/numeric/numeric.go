// Package numeric runs a fixed set of array operations per request so a
// host can confirm that a fixture doing real work still answers.
package numeric

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// Completed is the response body once every operation has run.
const Completed = "Finished numpy commands"

// Results holds the output of one run.
type Results struct {
	Addition       Vector
	Subtraction    Vector
	Multiplication Vector
	Division       Vector
	Mean           float64
	Dot            float64
	Transpose      Matrix
}

// Run computes every operation over the standard inputs.
func Run() (*Results, error) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}
	m := Matrix{{1, 2}, {3, 4}}

	var (
		res Results
		err error
	)
	if res.Addition, err = Add(a, b); err != nil {
		return nil, err
	}
	if res.Subtraction, err = Subtract(a, b); err != nil {
		return nil, err
	}
	if res.Multiplication, err = Multiply(a, b); err != nil {
		return nil, err
	}
	if res.Division, err = Divide(a, b); err != nil {
		return nil, err
	}
	if res.Mean, err = Mean(a); err != nil {
		return nil, err
	}
	if res.Dot, err = Dot(a, b); err != nil {
		return nil, err
	}
	if res.Transpose, err = Transpose(m); err != nil {
		return nil, err
	}
	return &res, nil
}

// App runs the operations and answers with Completed.
type App struct {
	id     string
	logger *slog.Logger
}

// New creates a numeric app. A nil logger uses slog.Default.
func New(id string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{id: id, logger: logger}
}

// String returns the unique identifier of the application
func (a *App) String() string {
	return a.id
}

// HandleHTTP computes the results, logs them at debug and writes Completed.
func (a *App) HandleHTTP(ctx context.Context, w http.ResponseWriter, _ *http.Request) error {
	res, err := Run()
	if err != nil {
		return fmt.Errorf("numeric run failed: %w", err)
	}
	a.logger.DebugContext(ctx, "Numeric commands finished",
		"addition", res.Addition,
		"subtraction", res.Subtraction,
		"multiplication", res.Multiplication,
		"division", res.Division,
		"mean", res.Mean,
		"dot", res.Dot,
		"transpose", res.Transpose,
	)

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(Completed)); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
