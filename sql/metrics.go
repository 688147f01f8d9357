package sql

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aicredit/go-aicredit/metrics"
)

const namespace = "database"

type latencyObserver interface {
	WithLabelValues(...string) prometheus.Observer
}

// queryDuration in nanoseconds.
var queryDuration = metrics.NewHistogramWithBuckets(
	"query_duration",
	namespace,
	"Duration of the query in nanoseconds",
	[]string{"query"},
	prometheus.ExponentialBuckets(100_000, 2, 20),
)

var connWaitLatency = metrics.NewHistogramWithBuckets(
	"conn_wait_latency",
	namespace,
	"Time spent waiting for a pooled connection in seconds",
	[]string{},
	prometheus.ExponentialBuckets(0.00001, 2, 16),
).WithLabelValues()
