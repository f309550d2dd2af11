// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Remote call outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeError      = "error"
	OutcomeSuperseded = "superseded"
	OutcomeCacheHit   = "cache_hit"
)

var (
	remoteRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shelfmark",
			Subsystem: "remote",
			Name:      "request_duration_seconds",
			Help:      "Latency of calls to the remote media service",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	remoteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shelfmark",
			Subsystem: "remote",
			Name:      "requests_total",
			Help:      "Remote media service calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(remoteRequestDuration)
	prometheus.MustRegister(remoteRequestsTotal)
}

// ObserveRemote records one remote call.
func ObserveRemote(operation, outcome string, elapsed time.Duration) {
	remoteRequestsTotal.WithLabelValues(operation, outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeError {
		remoteRequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	}
}

// CountRemote records an outcome that involved no network round trip.
func CountRemote(operation, outcome string) {
	remoteRequestsTotal.WithLabelValues(operation, outcome).Inc()
}
