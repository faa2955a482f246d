// Package requestid tags every request and response with an identifier.
package requestid

import (
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// HeaderName carries the request identifier in both directions.
const HeaderName = "X-Request-Id"

// Generator produces a new identifier.
type Generator func() (string, error)

// NewV6 generates a time-ordered UUID.
func NewV6() (string, error) {
	id, err := uuid.NewV6()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// RequestID keeps a caller-supplied X-Request-Id or generates one.
type RequestID struct {
	generate Generator
}

// New returns the middleware. A nil generator uses NewV6.
func New(generate Generator) *RequestID {
	if generate == nil {
		generate = NewV6
	}
	return &RequestID{generate: generate}
}

// Middleware returns the middleware function. When generation fails the
// request proceeds without an identifier.
func (m *RequestID) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()

		id := r.Header.Get(HeaderName)
		if id == "" {
			generated, err := m.generate()
			if err == nil {
				id = generated
				r.Header.Set(HeaderName, id)
			}
		}
		if id != "" {
			rp.Writer().Header().Set(HeaderName, id)
		}

		rp.Next()
	}
}
