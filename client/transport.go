// Package client - transport.go defines how built requests are executed.
//
// Two backends implement Transport: "resty", built on a full-featured HTTP
// client library, and "stdlib", built on net/http alone. Backends register
// themselves at package initialization; the resty backend is left out of
// builds tagged nohttplib. DefaultTransport picks the preferred available
// backend once per process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"unicode/utf8"
)

// Backend names a Transport implementation.
type Backend string

const (
	// BackendResty executes requests with github.com/go-resty/resty/v2.
	BackendResty Backend = "resty"

	// BackendStdlib executes requests with net/http, encoding the query
	// string and decoding the body by hand.
	BackendStdlib Backend = "stdlib"
)

// backendPreference is the order DefaultTransport tries backends in.
var backendPreference = []Backend{BackendResty, BackendStdlib}

// Transport executes a built Request and returns the decoded JSON value.
//
// Implementations must behave identically: the same response body yields
// the same value, and every failure is reported as a *TransportError.
type Transport interface {
	Send(ctx context.Context, req *Request) (any, error)
	Backend() Backend
}

// TransportFactory creates a Transport on top of hc. A nil hc means the
// backend's default client.
type TransportFactory func(hc *http.Client) Transport

var (
	backendsMu sync.RWMutex
	backends   = map[Backend]TransportFactory{}

	defaultOnce      sync.Once
	defaultTransport Transport
)

// registerBackend makes a backend available. Called from init functions.
func registerBackend(name Backend, factory TransportFactory) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[name] = factory
}

// Backends returns the names of the backends compiled into this binary.
func Backends() []Backend {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	names := make([]Backend, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// NewTransport creates the named backend on top of hc (nil for defaults).
// An empty name selects the preferred available backend.
func NewTransport(name Backend, hc *http.Client) (Transport, error) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	if name == "" {
		for _, candidate := range backendPreference {
			if factory, ok := backends[candidate]; ok {
				return factory(hc), nil
			}
		}
		return nil, errors.New("no http transport backend available")
	}

	factory, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown transport backend %q", name)
	}
	return factory(hc), nil
}

// DefaultTransport returns the process-wide transport, chosen on first use
// from the backends available in this build.
func DefaultTransport() Transport {
	defaultOnce.Do(func() {
		t, err := NewTransport("", nil)
		if err != nil {
			// the stdlib backend is always compiled in
			panic(err)
		}
		defaultTransport = t
	})
	return defaultTransport
}

// readResponse turns a finished HTTP exchange into the decoded JSON value.
// Shared by every backend so the results cannot diverge.
func readResponse(backend Backend, status int, body []byte) (any, error) {
	if status >= http.StatusBadRequest {
		te := &TransportError{Backend: string(backend), Status: status}
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			te.Err = fmt.Errorf("server error: %s", errResp.Error)
		} else {
			te.Err = fmt.Errorf("%s: %s", http.StatusText(status), truncate(body, 512))
		}
		return nil, te
	}
	v, err := decodeJSON(body)
	if err != nil {
		return nil, &TransportError{Backend: string(backend), Status: status, Err: err}
	}
	return v, nil
}

// decodeJSON parses a UTF-8 JSON document of any shape. Numbers are kept as
// json.Number so they are passed on exactly as the service sent them.
func decodeJSON(body []byte) (any, error) {
	if !utf8.Valid(body) {
		return nil, errors.New("response body is not valid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("failed to decode response: trailing data after JSON value")
	}
	return v, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
