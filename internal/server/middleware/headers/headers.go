// Package headers applies a fixture's cross-origin policy to every response.
//
// The policies are deliberately permissive; fixtures are only reached by
// local test harnesses and the headers are not a security boundary.
package headers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	supervisorHeaders "github.com/robbyt/go-supervisor/runnables/httpserver/middleware/headers"
)

// Policy names a fixed set of CORS response headers.
type Policy string

const (
	// PolicyOrigin sets only Access-Control-Allow-Origin.
	PolicyOrigin Policy = "origin"

	// PolicyFull adds method, header and credential allow-lists.
	PolicyFull Policy = "full"

	// PolicyJSONEcho allows OPTIONS and GET and lets clients cache the
	// preflight for thirty days.
	PolicyJSONEcho Policy = "jsonecho"
)

// ErrUnknownPolicy is returned for a Policy that is not declared above.
var ErrUnknownPolicy = errors.New("unknown CORS policy")

// Policies lists every known policy, sorted.
func Policies() []Policy {
	out := []Policy{PolicyOrigin, PolicyFull, PolicyJSONEcho}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Headers returns the response headers for p.
func (p Policy) Headers() (http.Header, error) {
	h := make(http.Header)
	h.Set("Access-Control-Allow-Origin", "*")

	switch p {
	case PolicyOrigin:
	case PolicyFull:
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, PATCH, DELETE")
		h.Set("Access-Control-Allow-Headers", "X-Requested-With,content-type")
		h.Set("Access-Control-Allow-Credentials", "true")
	case PolicyJSONEcho:
		h.Set("Access-Control-Allow-Methods", "OPTIONS, GET")
		h.Set("Access-Control-Max-Age", "2592000")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(p))
	}
	return h, nil
}

// CORSMiddleware sets a policy's headers before the handler runs.
type CORSMiddleware struct {
	policy     Policy
	middleware httpserver.HandlerFunc
}

// NewCORSMiddleware builds the middleware for policy.
func NewCORSMiddleware(policy Policy) (*CORSMiddleware, error) {
	h, err := policy.Headers()
	if err != nil {
		return nil, err
	}

	return &CORSMiddleware{
		policy:     policy,
		middleware: supervisorHeaders.NewWithOperations(supervisorHeaders.WithSet(h)),
	}, nil
}

// Policy returns the policy this middleware applies.
func (m *CORSMiddleware) Policy() Policy {
	return m.policy
}

// Middleware returns the middleware function.
func (m *CORSMiddleware) Middleware() httpserver.HandlerFunc {
	return m.middleware
}
