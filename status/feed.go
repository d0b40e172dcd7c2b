// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package status

import (
	"context"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"github.com/hackforge/hackslot/db"
	"github.com/hackforge/hackslot/models"
)

// Listener reconnect bounds and keepalive interval.
const (
	minReconnectInterval = time.Second
	maxReconnectInterval = 30 * time.Second
	keepaliveInterval    = 90 * time.Second
)

// Feed keeps the Broadcaster supplied with fresh capacity snapshots.
// On postgres it rides the problem_capacity NOTIFY trigger via
// pq.Listener, which reconnects on its own; a dropped connection is
// followed by a full re-read, so missed notifications cannot wedge the
// feed. On sqlite it degrades to polling.
type Feed struct {
	reader       *Reader
	bc           *Broadcaster
	dbType       string
	dsn          string
	pollInterval time.Duration
}

func NewFeed(reader *Reader, bc *Broadcaster, dbType, dsn string, pollInterval time.Duration) *Feed {
	return &Feed{
		reader:       reader,
		bc:           bc,
		dbType:       dbType,
		dsn:          dsn,
		pollInterval: pollInterval,
	}
}

// Run blocks until ctx is cancelled. Publishes an initial snapshot, then
// re-publishes on every committed capacity change.
func (f *Feed) Run(ctx context.Context) {
	f.publishFresh(ctx)

	if f.dbType == "postgres" {
		f.runListener(ctx)
		return
	}
	f.runPoller(ctx)
}

func (f *Feed) runListener(ctx context.Context) {
	listener := pq.NewListener(f.dsn, minReconnectInterval, maxReconnectInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				slog.Warn("capacity feed listener event", "event", ev, "error", err)
			}
		})
	defer listener.Close()

	if err := listener.Listen(db.CapacityChannel); err != nil {
		slog.Error("capacity feed LISTEN failed, falling back to polling", "error", err)
		f.runPoller(ctx)
		return
	}
	slog.Info("capacity feed listening", "channel", db.CapacityChannel)

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-listener.Notify:
			// n == nil signals a reconnect; notifications may have been
			// missed while the connection was down. Either way a full
			// re-read yields the current truth.
			if n == nil {
				slog.Info("capacity feed reconnected, refreshing counts")
			}
			f.publishFresh(ctx)
		case <-time.After(keepaliveInterval):
			go func() {
				if err := listener.Ping(); err != nil {
					slog.Warn("capacity feed keepalive failed", "error", err)
				}
			}()
		}
	}
}

func (f *Feed) runPoller(ctx context.Context) {
	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()

	var last []models.CapacitySnapshot
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snaps, err := f.reader.Counts(ctx)
			if err != nil {
				slog.Warn("capacity feed poll failed", "error", err)
				continue
			}
			if snapshotsEqual(last, snaps) {
				continue
			}
			last = snaps
			f.bc.Publish(snaps)
		}
	}
}

func (f *Feed) publishFresh(ctx context.Context) {
	snaps, err := f.reader.Counts(ctx)
	if err != nil {
		slog.Warn("capacity feed refresh failed", "error", err)
		return
	}
	f.bc.Publish(snaps)
}

func snapshotsEqual(a, b []models.CapacitySnapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
