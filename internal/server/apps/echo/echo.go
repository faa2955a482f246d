// Package echo provides apps that send the request body back to the caller.
package echo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/atlanticdynamic/hostfixtures/internal/server/apps"
)

// ErrInvalidJSON is returned when a JSON echo receives a body that does not parse.
var ErrInvalidJSON = errors.New("request body is not valid JSON")

var emptyObject = []byte("{}")

// JSON echoes a JSON request body unchanged. An empty body is answered
// with an empty object.
type JSON struct {
	id string
}

// NewJSON creates a JSON echo app.
func NewJSON(id string) *JSON {
	return &JSON{id: id}
}

// String returns the unique identifier of the application
func (a *JSON) String() string {
	return a.id
}

// HandleHTTP validates the body and writes it back byte for byte.
func (a *JSON) HandleHTTP(_ context.Context, w http.ResponseWriter, r *http.Request) error {
	body, err := apps.ReadBody(r)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		body = emptyObject
	} else if !json.Valid(body) {
		return ErrInvalidJSON
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// Raw writes the request body back as-is and repeats the caller's
// Content-Type header.
type Raw struct {
	id string
}

// NewRaw creates a raw echo app.
func NewRaw(id string) *Raw {
	return &Raw{id: id}
}

// String returns the unique identifier of the application
func (a *Raw) String() string {
	return a.id
}

// HandleHTTP copies the body into the response.
func (a *Raw) HandleHTTP(_ context.Context, w http.ResponseWriter, r *http.Request) error {
	body, err := apps.ReadBody(r)
	if err != nil {
		return err
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// Reencode parses the body as JSON and writes back its compact encoding
// with a text/json content type.
type Reencode struct {
	id string
}

// NewReencode creates a re-encoding echo app.
func NewReencode(id string) *Reencode {
	return &Reencode{id: id}
}

// String returns the unique identifier of the application
func (a *Reencode) String() string {
	return a.id
}

// HandleHTTP decodes and re-encodes the body. Unlike JSON, an empty body
// is an error.
func (a *Reencode) HandleHTTP(_ context.Context, w http.ResponseWriter, r *http.Request) error {
	body, err := apps.ReadBody(r)
	if err != nil {
		return err
	}

	out, err := reencode(body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// reencode keeps number literals as written and leaves HTML characters
// unescaped. Object keys come out sorted.
func reencode(body []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after value", ErrInvalidJSON)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
