//go:build !nohttplib

package client

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
)

func init() {
	registerBackend(BackendResty, func(hc *http.Client) Transport {
		return NewRestyTransport(hc)
	})
}

// RestyTransport executes requests with the resty HTTP client library.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport returns a Transport backed by a resty client wrapping
// hc, or resty's own default client when hc is nil.
func NewRestyTransport(hc *http.Client) *RestyTransport {
	var rc *resty.Client
	if hc != nil {
		rc = resty.NewWithClient(hc)
	} else {
		rc = resty.New()
	}
	rc.SetHeader("Accept", "application/json").
		SetLogger(discardLogger{})
	return &RestyTransport{client: rc}
}

// Backend implements Transport.
func (t *RestyTransport) Backend() Backend { return BackendResty }

// Send implements Transport.
func (t *RestyTransport) Send(ctx context.Context, req *Request) (any, error) {
	r := t.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(req.Query)

	if req.Body != nil {
		r.SetHeader("Content-Type", req.ContentType).
			SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.Endpoint)
	if err != nil {
		return nil, &TransportError{Backend: string(BackendResty), Err: err}
	}

	return readResponse(BackendResty, resp.StatusCode(), resp.Body())
}

// discardLogger silences resty; failures are reported through returned
// errors only.
type discardLogger struct{}

func (discardLogger) Errorf(string, ...interface{}) {}
func (discardLogger) Warnf(string, ...interface{})  {}
func (discardLogger) Debugf(string, ...interface{}) {}
