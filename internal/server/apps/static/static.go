// Package static provides apps that answer every request with a fixed body.
package static

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// JSON answers with a payload encoded once at construction.
type JSON struct {
	id   string
	body []byte
}

// NewJSON encodes payload and returns an app serving it.
func NewJSON(id string, payload any) (*JSON, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload for %s: %w", id, err)
	}
	return &JSON{id: id, body: body}, nil
}

// String returns the unique identifier of the application
func (a *JSON) String() string {
	return a.id
}

// HandleHTTP writes the encoded payload.
func (a *JSON) HandleHTTP(_ context.Context, w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(a.body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// Text answers with a fixed plain-text body.
type Text struct {
	id   string
	body string
}

// NewText returns an app serving body as text/plain.
func NewText(id, body string) *Text {
	return &Text{id: id, body: body}
}

// String returns the unique identifier of the application
func (a *Text) String() string {
	return a.id
}

// HandleHTTP writes the configured text.
func (a *Text) HandleHTTP(_ context.Context, w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(a.body)); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
