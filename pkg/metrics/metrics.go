// Package metrics documents the Prometheus metrics exposed by the RT MCP
// server. The metrics themselves are defined next to the code they measure
// (pkg/client) and registered via promauto; this package exports the
// registry and the HTTP handler used by the http transport.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the Prometheus registerer used by the server. All metrics are
// registered automatically via promauto in their defining packages.
var Registry = prometheus.DefaultRegisterer

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Metrics reference:
//
// Request metrics (pkg/client):
//   - rt_requests_total{endpoint, status} (Counter): requests by resource
//     segment and HTTP status ("network_error" when no response arrived)
//   - rt_request_duration_seconds{endpoint} (Histogram): request duration
//   - rt_errors_total{kind} (Counter): errors by kind (network,
//     authentication, authorization, not_found, validation, conflict, api)
//
// Example queries:
//
//   # Request error rate
//   rate(rt_errors_total[5m])
//
//   # P95 request latency
//   histogram_quantile(0.95, rate(rt_request_duration_seconds_bucket[5m]))
