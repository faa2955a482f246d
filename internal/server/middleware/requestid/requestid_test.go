package requestid

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, m *RequestID, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	var seen string
	route, err := httpserver.NewRouteFromHandlerFunc("test", "/test",
		func(w http.ResponseWriter, r *http.Request) {
			seen = r.Header.Get(HeaderName)
			w.WriteHeader(http.StatusOK)
		}, m.Middleware())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	route.ServeHTTP(rec, req)
	return rec, seen
}

func TestRequestID_Generates(t *testing.T) {
	t.Parallel()
	rec, seen := run(t, New(nil), httptest.NewRequest(http.MethodGet, "/test", nil))

	id := rec.Header().Get(HeaderName)
	require.NotEmpty(t, id)
	assert.Equal(t, id, seen, "handler sees the same id")

	parsed, err := uuid.FromString(id)
	require.NoError(t, err)
	assert.Equal(t, byte(6), parsed.Version())
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderName, "caller-supplied")

	called := false
	m := New(func() (string, error) {
		called = true
		return "generated", nil
	})
	rec, seen := run(t, m, req)

	assert.False(t, called)
	assert.Equal(t, "caller-supplied", rec.Header().Get(HeaderName))
	assert.Equal(t, "caller-supplied", seen)
}

func TestRequestID_GeneratorFailure(t *testing.T) {
	t.Parallel()
	m := New(func() (string, error) { return "", errors.New("entropy exhausted") })
	rec, seen := run(t, m, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(HeaderName))
	assert.Empty(t, seen)
}

func TestNewV6_Unique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]struct{})
	for range 100 {
		id, err := NewV6()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
