package client

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mynotes_client",
			Name:      "requests_total",
			Help:      "API requests issued, by method and status class.",
		},
		[]string{"method", "status"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mynotes_client",
			Name:      "request_failures_total",
			Help:      "API requests that failed at the transport level.",
		},
		[]string{"method"},
	)
)

// metricsTransport counts every request the client issues. It is
// installed outermost so dumped debug traffic is counted too.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := mt.base.RoundTrip(req)
	if err != nil {
		requestFailuresTotal.WithLabelValues(req.Method).Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(req.Method, statusClass(resp.StatusCode)).Inc()
	return resp, nil
}

// statusClass collapses status codes to "2xx", "4xx", etc. to keep
// label cardinality small.
func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

func (c *Client) wrapTransportWithMetrics() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &metricsTransport{base: base}
}
