package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
)

// Option mutates the Client during New().
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client. Useful for setting
// transport timeouts, tracing, custom TLS settings, etc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging turns request/response dump logging on or off. The
// transport wrapper is installed after all options have been applied,
// so ordering relative to WithHTTPClient does not matter.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debugLogging = enabled
		return nil
	}
}
