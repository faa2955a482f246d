package routing

import (
	"net/http"
	"testing"

	"github.com/atlanticdynamic/hostfixtures/internal/server/apps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_Validate(t *testing.T) {
	t.Parallel()
	app := apps.NewMockApp("app")

	tests := []struct {
		name    string
		route   Route
		wantErr bool
	}{
		{name: "exact get", route: Get("/users", app)},
		{name: "wildcard post", route: Post(AnyPath, app)},
		{name: "root path", route: Route{Method: http.MethodPut, Path: "/", App: app}},
		{name: "empty method", route: Route{Path: "/", App: app}, wantErr: true},
		{name: "lower case method", route: Route{Method: "get", Path: "/", App: app}, wantErr: true},
		{name: "relative path", route: Get("users", app), wantErr: true},
		{name: "empty path", route: Get("", app), wantErr: true},
		{name: "nil app", route: Get("/", nil), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.route.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRoute)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRoute_ID(t *testing.T) {
	t.Parallel()
	app := apps.NewMockApp("app")
	assert.Equal(t, "GET /users", Get("/users", app).ID())
	assert.Equal(t, "POST *", Post(AnyPath, app).ID())
	assert.True(t, Post(AnyPath, app).IsWildcard())
	assert.False(t, Get("/", app).IsWildcard())
}
