// Package client provides an HTTP client for the Diffbot content-extraction
// API.
//
// A Client is bound to an API token and an API version. Every call names an
// API kind (article, frontpage, product, image or analyze) and a target
// page URL, and returns the service's JSON response decoded into plain Go
// values (map[string]any, []any, string, json.Number, bool or nil).
//
// Example usage:
//
//	c := client.NewClient(os.Getenv("DIFFBOT_TOKEN"))
//	res, err := c.Article(ctx, "https://github.com", client.WithFields("title", "text"))
//	if err != nil {
//	    log.Fatalf("Failed to extract article: %v", err)
//	}
//	fmt.Println(res.(map[string]any)["title"])
//
// One-shot callers can use the package functions of the same names, which
// build a throwaway Client from the supplied token.
package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultAPIRoot is the base URL of the Diffbot API.
	DefaultAPIRoot = "http://api.diffbot.com"

	// DefaultVersion is the API version used when none is given.
	DefaultVersion = 2
)

// Client is a Diffbot API client.
//
// A Client holds no mutable state after construction, so it can be reused
// for any number of sequential or concurrent calls.
type Client struct {
	// token identifies the caller to the service.
	token string

	// version is the "v{version}" endpoint path segment.
	version int

	// root is the API base URL (e.g., "http://api.diffbot.com").
	root string

	// transport executes built requests.
	transport Transport

	log *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithVersion selects the API version. Values below 1 are ignored.
func WithVersion(version int) Option {
	return func(c *Client) {
		if version > 0 {
			c.version = version
		}
	}
}

// WithAPIRoot points the client at a different API base URL.
func WithAPIRoot(root string) Option {
	return func(c *Client) {
		if root != "" {
			c.root = root
		}
	}
}

// WithTransport replaces DefaultTransport() for this client.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithLogger enables debug logging of every call.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient creates a client bound to token.
//
// The client defaults to API version 2, the public API root and the
// process-wide DefaultTransport().
//
// Parameters:
//   - token: Diffbot API token; calls fail with ErrMissingToken when empty
//   - opts: optional version, API root, transport and logger
//
// Returns:
//   - A pointer to a configured Client ready for use.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		version: DefaultVersion,
		root:    DefaultAPIRoot,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = DefaultTransport()
	}
	return c
}

// Version returns the API version the client calls.
func (c *Client) Version() int { return c.version }

// Backend returns the name of the transport serving the client.
func (c *Client) Backend() Backend { return c.transport.Backend() }

// API calls the named API for target and returns the decoded response.
//
// The kind is validated before anything else, so an invalid kind never
// causes network traffic. A WithTimeout option is sent to the service and
// also bounds the local round trip.
//
// Parameters:
//   - ctx: context for the round trip
//   - kind: one of Kinds()
//   - target: URL of the page to extract
//   - opts: optional fields, timeout and body
//
// Returns:
//   - The decoded JSON response
//   - ErrInvalidKind, ErrBodyNotSupported, ErrMissingToken or a
//     *TransportError
func (c *Client) API(ctx context.Context, kind Kind, target string, opts ...RequestOption) (any, error) {
	req, err := Build(kind, c.root, c.version, target, c.token, opts...)
	if err != nil {
		return nil, err
	}
	if c.token == "" {
		return nil, ErrMissingToken
	}

	id := uuid.NewString()
	log := c.log.With(
		zap.String("request_id", id),
		zap.String("api", string(kind)),
		zap.String("backend", string(c.transport.Backend())),
	)
	if req.ignoredFields != "" {
		log.Debug("fields ignored, api has no field selection",
			zap.String("fields", req.ignoredFields))
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	start := time.Now()
	log.Debug("sending request",
		zap.String("method", req.Method),
		zap.String("endpoint", req.Endpoint),
		zap.String("url", target))

	res, err := c.transport.Send(ctx, req)
	if err != nil {
		log.Debug("request failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return nil, err
	}

	log.Debug("request done", zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// Article calls the Article API.
func (c *Client) Article(ctx context.Context, target string, opts ...RequestOption) (any, error) {
	return c.API(ctx, KindArticle, target, opts...)
}

// Frontpage calls the Frontpage API. The endpoint has no field selection;
// field options are dropped and never sent.
func (c *Client) Frontpage(ctx context.Context, target string, opts ...RequestOption) (any, error) {
	return c.API(ctx, KindFrontpage, target, opts...)
}

// Product calls the Product API.
func (c *Client) Product(ctx context.Context, target string, opts ...RequestOption) (any, error) {
	return c.API(ctx, KindProduct, target, opts...)
}

// Image calls the Image API.
func (c *Client) Image(ctx context.Context, target string, opts ...RequestOption) (any, error) {
	return c.API(ctx, KindImage, target, opts...)
}

// Analyze calls the classifier (analyze) API.
func (c *Client) Analyze(ctx context.Context, target string, opts ...RequestOption) (any, error) {
	return c.API(ctx, KindAnalyze, target, opts...)
}

// Classify is an alias for Analyze.
func (c *Client) Classify(ctx context.Context, target string, opts ...RequestOption) (any, error) {
	return c.Analyze(ctx, target, opts...)
}
