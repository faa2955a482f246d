// Package apps defines the handler contract every fixture route is bound to.
package apps

import (
	"context"
	"errors"
	"net/http"
)

// MaxBodySize caps how much of a request body an app will read.
const MaxBodySize int64 = 10 << 20

var (
	// ErrBodyTooLarge is returned when a request body exceeds MaxBodySize.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrNotFound is returned when the resource an app serves is missing.
	ErrNotFound = errors.New("resource not found")
)

// App produces a complete HTTP response for one route. A returned error
// means the app could not produce a response and the caller should reply
// with a server error if nothing has been written yet.
type App interface {
	// String returns the unique identifier of the application
	String() string

	// HandleHTTP processes HTTP requests for this application
	HandleHTTP(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}
