package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport logs full HTTP request/response dumps when debug
// logging is requested. Dumps include bodies and headers (tokens
// included), so only enable it against development backends.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// wrapTransportWithDebug installs debugTransport around the client's
// current transport. Called from New after all options have run.
func (c *Client) wrapTransportWithDebug() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &debugTransport{base: base}
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// MYNOTES_DEBUG targets this client specifically; DEBUG is the general
// development flag. Both must be the literal string "true".
func debugLoggingRequested() bool {
	return os.Getenv("MYNOTES_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
