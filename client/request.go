// Package client - request.go builds Diffbot API requests.
//
// Building is pure: it validates the API kind, normalizes the optional
// parameters and produces a Request that any Transport can execute.
package client

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultContentType is sent with a POST body when no content type is given.
const DefaultContentType = "text/plain"

// AllFields asks the service to include every attribute in its response.
const AllFields = "*"

// Request is a fully built API call.
type Request struct {
	// Kind is the API the request targets.
	Kind Kind

	// Method is http.MethodGet, or http.MethodPost when Body is set.
	Method string

	// Endpoint is "{root}/v{version}/{kind}" without a query string.
	Endpoint string

	// Query holds url, token and the optional fields and timeout.
	Query url.Values

	// Body is the POSTed page content, nil for GET requests.
	Body []byte

	// ContentType accompanies Body.
	ContentType string

	// Timeout bounds the round trip when positive.
	Timeout time.Duration

	// ignoredFields is a fields value dropped because the kind has no
	// field selection.
	ignoredFields string
}

// URL returns the endpoint with the encoded query string attached.
func (r *Request) URL() string {
	if len(r.Query) == 0 {
		return r.Endpoint
	}
	return r.Endpoint + "?" + r.Query.Encode()
}

// RequestOption sets an optional parameter of a single API call.
type RequestOption func(*requestParams)

type requestParams struct {
	fields      string
	timeout     time.Duration
	body        []byte
	hasBody     bool
	contentType string
}

// WithFields restricts the response to the named fields. The names are
// sorted and comma-joined so that equal field sets always produce the same
// query string. An empty list leaves the selector unset.
func WithFields(names ...string) RequestOption {
	return func(p *requestParams) {
		p.fields = joinFields(names)
	}
}

// WithFieldString passes a pre-joined field selector through unchanged,
// e.g. "*" or "title,text".
func WithFieldString(fields string) RequestOption {
	return func(p *requestParams) {
		p.fields = fields
	}
}

// WithAllFields requests every field, equivalent to WithFieldString("*").
func WithAllFields() RequestOption {
	return WithFieldString(AllFields)
}

// WithTimeout asks the service to give up after d and bounds the local
// round trip by the same amount. Zero or negative values are ignored.
func WithTimeout(d time.Duration) RequestOption {
	return func(p *requestParams) {
		p.timeout = d
	}
}

// WithBody POSTs data as the page content instead of letting the service
// fetch the target URL. An empty contentType defaults to text/plain.
func WithBody(data []byte, contentType string) RequestOption {
	return func(p *requestParams) {
		p.body = data
		p.hasBody = data != nil
		p.contentType = contentType
	}
}

// Build validates kind and assembles the request for it.
//
// Parameters:
//   - kind: API to call; anything outside Kinds() fails with ErrInvalidKind
//   - root: API root URL (e.g., "http://api.diffbot.com")
//   - version: API version used as the "v{version}" path segment
//   - target: page URL passed as the "url" query parameter
//   - token: API token passed as the "token" query parameter
//   - opts: optional fields, timeout and body
//
// Returns:
//   - The built Request
//   - ErrInvalidKind or ErrBodyNotSupported on invalid input
func Build(kind Kind, root string, version int, target, token string, opts ...RequestOption) (*Request, error) {
	caps, err := Lookup(kind)
	if err != nil {
		return nil, err
	}

	var p requestParams
	for _, opt := range opts {
		opt(&p)
	}

	req := &Request{
		Kind:     kind,
		Method:   http.MethodGet,
		Endpoint: fmt.Sprintf("%s/v%d/%s", strings.TrimRight(root, "/"), version, kind),
		Query: url.Values{
			"url":   {target},
			"token": {token},
		},
	}

	if p.timeout > 0 {
		req.Timeout = p.timeout
		req.Query.Set("timeout", formatSeconds(p.timeout))
	}

	if p.fields != "" {
		if caps.Fields {
			req.Query.Set("fields", p.fields)
		} else {
			req.ignoredFields = p.fields
		}
	}

	if p.hasBody {
		if !caps.Body {
			return nil, fmt.Errorf("%w: %s", ErrBodyNotSupported, kind)
		}
		req.Method = http.MethodPost
		req.Body = p.body
		req.ContentType = p.contentType
		if req.ContentType == "" {
			req.ContentType = DefaultContentType
		}
	}

	return req, nil
}

// joinFields sorts a copy of names and joins them with commas.
func joinFields(names []string) string {
	if len(names) == 0 {
		return ""
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
