// Package metrics defines and registers the custom Prometheus metrics for
// the club system. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto; the echoprometheus handler exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "club"

// AuthDeniedTotal counts requests rejected by the permission guard.
// Labels:
//   - permission: the permission key the caller failed (e.g. "HOLDINGS_WRITE")
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests rejected with 403 by the permission guard.",
	},
	[]string{"permission"},
)

// QuoteRefreshTotal counts holdings price refresh outcomes.
// Labels:
//   - result: "ok" (run completed), "symbol_error" (one symbol skipped),
//     "error" (run aborted)
var QuoteRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_refresh_total",
		Help:      "Total number of price refresh runs and per-symbol failures, by result.",
	},
	[]string{"result"},
)

// QuoteRefreshDuration measures how long a full price refresh run takes.
var QuoteRefreshDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_refresh_duration_seconds",
		Help:      "Duration of a full holdings price refresh run.",
		Buckets:   prometheus.DefBuckets,
	},
)
