// Package client is the Go SDK for the mynotes API: account sign-up and
// confirmation, sign-in, and authenticated CRUD over notes with optional
// attachments. All business logic lives server-side; this package only
// shapes requests, attaches the bearer credential, and decodes responses.
package client

import (
	"net/http"
)

// TokenSource supplies the current bearer token for authenticated calls.
// An empty string means "not signed in"; authenticated methods return
// ErrNoToken without touching the network in that case.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns the same token.
// Useful in tests and short-lived scripts.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client is a thin, synchronous HTTP client for the notes API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource

	debugLogging bool
}

// New constructs a Client for the given base URL. The TokenSource is
// consulted on every authenticated call so that sign-in and sign-out
// take effect immediately; pass StaticToken("") for the unauthenticated
// flows only.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if tokens == nil {
		tokens = StaticToken("")
	}

	c := &Client{
		baseURL: baseURL,
		// No client-side timeout: a call remains pending until the
		// transport resolves or the caller's context is done.
		http:   &http.Client{},
		tokens: tokens,
	}

	// Auto-enable debug via env variable without changing code.
	c.debugLogging = debugLoggingRequested()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Transport wrappers are installed only after every option has
	// run, so WithHTTPClient cannot displace them regardless of
	// option order.
	if c.debugLogging {
		c.wrapTransportWithDebug()
	}
	c.wrapTransportWithMetrics()

	return c
}

// bearerToken returns the current token, or ErrNoToken when the source
// has none. Authenticated methods call this before building a request.
func (c *Client) bearerToken() (string, error) {
	tok := c.tokens.Token()
	if tok == "" {
		return "", ErrNoToken
	}
	return tok, nil
}
