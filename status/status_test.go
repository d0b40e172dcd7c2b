// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package status

import (
	"context"
	"testing"
	"time"

	"github.com/hackforge/hackslot/allocator"
	"github.com/hackforge/hackslot/models"
	"github.com/hackforge/hackslot/testutil"
)

func TestReader_CountsDefaultsToDeclaredCapacity(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cat := testutil.NewTestCatalog(t, map[string]int{"ps-a": 4, "ps-b": 2})
	reader := NewReader(conn, cat)

	// No claims yet: every problem reports zero at its declared limit
	snaps, err := reader.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps))
	}
	want := []models.CapacitySnapshot{
		{ProblemID: "ps-a", ClaimedCount: 0, CapacityLimit: 4},
		{ProblemID: "ps-b", ClaimedCount: 0, CapacityLimit: 2},
	}
	for i := range want {
		if snaps[i] != want[i] {
			t.Errorf("snapshot %d = %+v, want %+v", i, snaps[i], want[i])
		}
	}
}

func TestReader_CountsReflectClaims(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cat := testutil.NewTestCatalog(t, map[string]int{"ps-a": 4, "ps-b": 2})
	reader := NewReader(conn, cat)
	alloc := allocator.New(conn, cat, 5)
	ctx := context.Background()

	if _, err := alloc.ClaimSlot(ctx, "team-1", "ps-b", "t1@example.com", ""); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	snaps, err := reader.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	for _, snap := range snaps {
		switch snap.ProblemID {
		case "ps-a":
			if snap.ClaimedCount != 0 {
				t.Errorf("ps-a count = %d, want 0", snap.ClaimedCount)
			}
		case "ps-b":
			if snap.ClaimedCount != 1 || snap.CapacityLimit != 2 {
				t.Errorf("ps-b = %+v, want 1/2", snap)
			}
		}
	}
}

// GetClaim must be idempotent: repeated reads with no intervening claim
// return identical results
func TestReader_GetClaimIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cat := testutil.NewTestCatalog(t, map[string]int{"ps-a": 4})
	reader := NewReader(conn, cat)
	alloc := allocator.New(conn, cat, 5)
	ctx := context.Background()

	// Absent claim reads as nil, both times
	first, err := reader.GetClaim(ctx, "team-ghost")
	if err != nil || first != nil {
		t.Fatalf("GetClaim(absent) = %+v, %v; want nil, nil", first, err)
	}
	second, err := reader.GetClaim(ctx, "team-ghost")
	if err != nil || second != nil {
		t.Fatalf("repeated GetClaim(absent) = %+v, %v; want nil, nil", second, err)
	}

	if _, err := alloc.ClaimSlot(ctx, "team-1", "ps-a", "t1@example.com", ""); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	a, err := reader.GetClaim(ctx, "team-1")
	if err != nil {
		t.Fatalf("GetClaim failed: %v", err)
	}
	b, err := reader.GetClaim(ctx, "team-1")
	if err != nil {
		t.Fatalf("GetClaim failed: %v", err)
	}
	if a == nil || b == nil || *a != *b {
		t.Errorf("repeated GetClaim returned different results: %+v vs %+v", a, b)
	}
}

func TestBroadcaster_DeliversLatestOnSubscribe(t *testing.T) {
	bc := NewBroadcaster()

	snaps := []models.CapacitySnapshot{{ProblemID: "ps-a", ClaimedCount: 1, CapacityLimit: 4}}
	bc.Publish(snaps)

	ch, cancel := bc.Subscribe()
	defer cancel()

	select {
	case got := <-ch:
		if len(got) != 1 || got[0] != snaps[0] {
			t.Errorf("initial snapshot = %+v, want %+v", got, snaps)
		}
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot delivered")
	}
}

func TestBroadcaster_SlowConsumerGetsNewest(t *testing.T) {
	bc := NewBroadcaster()
	ch, cancel := bc.Subscribe()
	defer cancel()

	// Publish twice without the consumer reading; the stale snapshot is
	// replaced, not queued
	bc.Publish([]models.CapacitySnapshot{{ProblemID: "ps-a", ClaimedCount: 1, CapacityLimit: 4}})
	bc.Publish([]models.CapacitySnapshot{{ProblemID: "ps-a", ClaimedCount: 2, CapacityLimit: 4}})

	select {
	case got := <-ch:
		if got[0].ClaimedCount != 2 {
			t.Errorf("delivered count = %d, want newest (2)", got[0].ClaimedCount)
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestBroadcaster_CancelClosesChannel(t *testing.T) {
	bc := NewBroadcaster()
	ch, cancel := bc.Subscribe()

	if bc.Subscribers() != 1 {
		t.Errorf("subscribers = %d, want 1", bc.Subscribers())
	}

	cancel()
	cancel() // idempotent

	if bc.Subscribers() != 0 {
		t.Errorf("subscribers after cancel = %d, want 0", bc.Subscribers())
	}

	if _, open := <-ch; open {
		t.Error("channel still open after cancel")
	}

	// Publishing after cancel must not panic
	bc.Publish([]models.CapacitySnapshot{{ProblemID: "ps-a"}})
}

// The polling feed must pick up committed claims and push a fresh
// snapshot to subscribers
func TestFeed_PollerPublishesOnChange(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cat := testutil.NewTestCatalog(t, map[string]int{"ps-a": 4})
	reader := NewReader(conn, cat)
	bc := NewBroadcaster()
	alloc := allocator.New(conn, cat, 5)

	feed := NewFeed(reader, bc, "sqlite", "", 20*time.Millisecond)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go feed.Run(ctx)

	ch, cancel := bc.Subscribe()
	defer cancel()

	// Wait for the initial zero snapshot
	waitForCount(t, ch, 0)

	if _, err := alloc.ClaimSlot(ctx, "team-1", "ps-a", "t1@example.com", ""); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	// The next published snapshot reflects the claim
	waitForCount(t, ch, 1)
}

func waitForCount(t *testing.T, ch <-chan []models.CapacitySnapshot, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snaps := <-ch:
			if len(snaps) == 1 && snaps[0].ClaimedCount == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for claimed_count = %d", want)
		}
	}
}
