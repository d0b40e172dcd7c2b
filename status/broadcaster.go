// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package status

import (
	"sync"

	"github.com/hackforge/hackslot/metrics"
	"github.com/hackforge/hackslot/models"
)

// Broadcaster fans capacity snapshots out to every subscriber. Each
// subscriber channel holds only the newest snapshot: a slow consumer
// skips intermediate states but always converges on the latest counts.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[chan []models.CapacitySnapshot]struct{}
	latest []models.CapacitySnapshot
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan []models.CapacitySnapshot]struct{}),
	}
}

// Subscribe registers a consumer. The channel immediately carries the
// latest known snapshot, if any. The returned cancel func must be called
// on teardown; it closes the channel.
func (b *Broadcaster) Subscribe() (<-chan []models.CapacitySnapshot, func()) {
	ch := make(chan []models.CapacitySnapshot, 1)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	if b.latest != nil {
		ch <- b.latest
	}
	b.mu.Unlock()
	metrics.FeedSubscriberChange(1)

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
			metrics.FeedSubscriberChange(-1)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish stores snaps as the latest state and delivers it to every
// subscriber, replacing any undelivered older snapshot.
func (b *Broadcaster) Publish(snaps []models.CapacitySnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest = snaps
	for ch := range b.subs {
		// Drop the stale pending snapshot, if the consumer is behind
		select {
		case <-ch:
		default:
		}
		ch <- snaps
	}
	metrics.IncFeedPublish()
}

// Subscribers returns the current subscriber count.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
