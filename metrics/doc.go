// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus instrumentation for the allocator and
the capacity feed.

Series:

  - hackslot_claim_attempts_total{result}: outcomes of ClaimSlot calls
  - hackslot_claim_conflict_retries_total: transparent transaction retries
  - hackslot_claim_duration_seconds: ClaimSlot latency histogram
  - hackslot_feed_subscribers: connected live-feed clients
  - hackslot_feed_snapshots_published_total: broadcast snapshots

Scrape via GET /metrics (metrics.Handler).
*/
package metrics
