// Package metrics defines and registers all custom Prometheus metrics for
// the opsdash API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register themselves with the default registry at package load
// via promauto; importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "opsdash"

// ── Remote store metrics ──────────────────────────────────────────────────────

// RemoteRequestsTotal counts HTTP attempts against the remote store,
// retries included.
// Labels:
//   - method: HTTP method ("GET", "POST", "PATCH", "DELETE")
//   - status: numeric HTTP status ("200", "500", …) or "network_error" when
//     no response was received at all
var RemoteRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_requests_total",
		Help:      "Total number of HTTP attempts against the remote store, by method and outcome.",
	},
	[]string{"method", "status"},
)

// RemoteRetriesTotal counts retry waits scheduled after a retryable (5xx)
// response. A request that succeeds first time contributes nothing here.
var RemoteRetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_retries_total",
		Help:      "Total number of retries scheduled against the remote store.",
	},
)

// RemoteRequestDuration measures the wall time of a single HTTP attempt,
// excluding rate-limiter and backoff waits.
// Label:
//   - method: HTTP method
var RemoteRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_request_duration_seconds",
		Help:      "Duration of individual HTTP attempts against the remote store.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"method"},
)

// ── Conversion metrics ────────────────────────────────────────────────────────

// RemoteRecordsSkippedTotal counts records dropped during DTO conversion
// because they failed their structural invariants. Skips never fail a
// batch; this counter is how they stay visible.
// Label:
//   - entity: entity name ("project", "task", "calendar_event", …)
var RemoteRecordsSkippedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_records_skipped_total",
		Help:      "Total number of remote records dropped for failing conversion invariants.",
	},
	[]string{"entity"},
)
