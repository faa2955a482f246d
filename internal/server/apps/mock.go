package apps

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
)

var _ App = (*MockApp)(nil)

// MockApp is a testify mock of App.
type MockApp struct {
	mock.Mock
}

// NewMockApp creates a MockApp whose String method returns id.
func NewMockApp(id string) *MockApp {
	m := &MockApp{}
	m.On("String").Return(id).Maybe()
	return m
}

// String returns the mocked identifier.
func (m *MockApp) String() string {
	args := m.Called()
	return args.String(0)
}

// HandleHTTP records the call and returns the configured error.
func (m *MockApp) HandleHTTP(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	args := m.Called(ctx, w, r)
	return args.Error(0)
}
