// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Claim outcome label values
const (
	ResultClaimed          = "claimed"
	ResultAlreadyClaimed   = "already_claimed"
	ResultCapacityExceeded = "capacity_exceeded"
	ResultUnknownProblem   = "unknown_problem"
	ResultConflict         = "conflict"
	ResultError            = "error"
)

var (
	claimAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hackslot",
		Name:      "claim_attempts_total",
		Help:      "Claim attempts by final outcome.",
	}, []string{"result"})

	claimRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hackslot",
		Name:      "claim_conflict_retries_total",
		Help:      "Transparent claim transaction retries after a transient conflict.",
	})

	claimDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "hackslot",
		Name:      "claim_duration_seconds",
		Help:      "End-to-end ClaimSlot latency including internal retries.",
		Buckets:   prometheus.DefBuckets,
	})

	feedSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hackslot",
		Name:      "feed_subscribers",
		Help:      "Currently connected capacity feed subscribers.",
	})

	feedPublishes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hackslot",
		Name:      "feed_snapshots_published_total",
		Help:      "Capacity snapshots broadcast to subscribers.",
	})
)

// ObserveClaim records one completed ClaimSlot call.
func ObserveClaim(result string, d time.Duration) {
	claimAttempts.WithLabelValues(result).Inc()
	claimDuration.Observe(d.Seconds())
}

// IncClaimRetry counts one transparent transaction retry.
func IncClaimRetry() {
	claimRetries.Inc()
}

// FeedSubscriberChange adjusts the live subscriber gauge by delta.
func FeedSubscriberChange(delta int) {
	feedSubscribers.Add(float64(delta))
}

// IncFeedPublish counts one broadcast snapshot.
func IncFeedPublish() {
	feedPublishes.Inc()
}

// Handler returns the /metrics scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
