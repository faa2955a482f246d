package headers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Headers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		policy   Policy
		expected map[string]string
		absent   []string
	}{
		{
			policy:   PolicyOrigin,
			expected: map[string]string{"Access-Control-Allow-Origin": "*"},
			absent:   []string{"Access-Control-Allow-Methods", "Access-Control-Max-Age"},
		},
		{
			policy: PolicyFull,
			expected: map[string]string{
				"Access-Control-Allow-Origin":      "*",
				"Access-Control-Allow-Methods":     "GET, POST, OPTIONS, PUT, PATCH, DELETE",
				"Access-Control-Allow-Headers":     "X-Requested-With,content-type",
				"Access-Control-Allow-Credentials": "true",
			},
		},
		{
			policy: PolicyJSONEcho,
			expected: map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "OPTIONS, GET",
				"Access-Control-Max-Age":       "2592000",
			},
			absent: []string{"Access-Control-Allow-Credentials"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			t.Parallel()
			h, err := tt.policy.Headers()
			require.NoError(t, err)
			for k, v := range tt.expected {
				assert.Equal(t, v, h.Get(k), k)
			}
			for _, k := range tt.absent {
				assert.Empty(t, h.Get(k), k)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := Policy("strict").Headers()
		require.ErrorIs(t, err, ErrUnknownPolicy)
	})
}

func TestPolicies(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Policy{PolicyFull, PolicyJSONEcho, PolicyOrigin}, Policies())
}

func TestNewCORSMiddleware(t *testing.T) {
	t.Parallel()

	m, err := NewCORSMiddleware(PolicyFull)
	require.NoError(t, err)
	assert.Equal(t, PolicyFull, m.Policy())
	assert.NotNil(t, m.Middleware())

	m, err = NewCORSMiddleware("nope")
	require.ErrorIs(t, err, ErrUnknownPolicy)
	assert.Nil(t, m)
}

func TestCORSMiddleware_Integration(t *testing.T) {
	t.Parallel()

	for _, policy := range Policies() {
		t.Run(string(policy), func(t *testing.T) {
			t.Parallel()
			m, err := NewCORSMiddleware(policy)
			require.NoError(t, err)

			route, err := httpserver.NewRouteFromHandlerFunc("test", "/test",
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
					_, err := w.Write([]byte("missing"))
					assert.NoError(t, err)
				}, m.Middleware())
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			route.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"),
				"error responses carry the origin header too")
			assert.Equal(t, "missing", rec.Body.String())
		})
	}
}
