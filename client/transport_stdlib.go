package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

func init() {
	registerBackend(BackendStdlib, func(hc *http.Client) Transport {
		return NewStdlibTransport(hc)
	})
}

// StdlibTransport executes requests with net/http only. The query string is
// encoded by hand onto the endpoint and the body is read and decoded
// without any helper library.
type StdlibTransport struct {
	httpClient *http.Client
}

// NewStdlibTransport returns a Transport backed by hc, or by a default
// http.Client when hc is nil.
func NewStdlibTransport(hc *http.Client) *StdlibTransport {
	if hc == nil {
		hc = &http.Client{}
	}
	return &StdlibTransport{httpClient: hc}
}

// Backend implements Transport.
func (t *StdlibTransport) Backend() Backend { return BackendStdlib }

// Send implements Transport.
func (t *StdlibTransport) Send(ctx context.Context, req *Request) (any, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL(), body)
	if err != nil {
		return nil, t.fail(fmt.Errorf("failed to create request: %w", err))
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, t.fail(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{
			Backend: string(BackendStdlib),
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("failed to read response: %w", err),
		}
	}

	return readResponse(BackendStdlib, resp.StatusCode, data)
}

func (t *StdlibTransport) fail(err error) error {
	return &TransportError{Backend: string(BackendStdlib), Err: err}
}
