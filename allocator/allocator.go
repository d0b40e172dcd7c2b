// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hackforge/hackslot/catalog"
	"github.com/hackforge/hackslot/db"
	"github.com/hackforge/hackslot/metrics"
	"github.com/hackforge/hackslot/models"
)

var (
	// ErrAlreadyClaimed means the team has a claim on record; terminal
	// for that team.
	ErrAlreadyClaimed = errors.New("team has already claimed a problem statement")

	// ErrCapacityExceeded means the problem was full at commit time;
	// terminal for that problem, the team should pick another.
	ErrCapacityExceeded = errors.New("problem statement is at capacity")

	// ErrUnknownProblem means the problem ID is not in the catalog.
	ErrUnknownProblem = errors.New("unknown problem statement")

	// ErrConflict means internal retries were exhausted; the call is
	// safe to retry after a backoff.
	ErrConflict = errors.New("claim transaction kept conflicting, retry")
)

// baseBackoff is the first retry delay; each retry doubles it with jitter.
const baseBackoff = 25 * time.Millisecond

// Allocator is the single writer of problem_capacity and team_claim.
// All slot mutations go through ClaimSlot; no other code path writes
// either table, which is what makes the invariants enforceable.
type Allocator struct {
	db         *sql.DB
	catalog    *catalog.Catalog
	retryLimit int
}

// New creates an Allocator. retryLimit bounds the transparent retries
// performed on transient transaction conflicts.
func New(conn *sql.DB, cat *catalog.Catalog, retryLimit int) *Allocator {
	if retryLimit < 0 {
		retryLimit = 0
	}
	return &Allocator{db: conn, catalog: cat, retryLimit: retryLimit}
}

// ClaimSlot atomically locks problemID in for teamID: verifies the team
// has no existing claim, verifies remaining capacity, increments the
// problem's counter, and writes the claim record. All four effects commit
// together or not at all, however many other claims race concurrently.
//
// actorIdentity is the authenticated caller performing the claim and
// ipHash the hashed client address; both are stored for audit only,
// deduplication is on teamID.
func (a *Allocator) ClaimSlot(ctx context.Context, teamID, problemID, actorIdentity, ipHash string) (models.ClaimRecord, error) {
	start := time.Now()

	if teamID == "" {
		return models.ClaimRecord{}, errors.New("team ID is required")
	}
	ps, ok := a.catalog.Get(problemID)
	if !ok {
		metrics.ObserveClaim(metrics.ResultUnknownProblem, time.Since(start))
		return models.ClaimRecord{}, ErrUnknownProblem
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		claim, err := a.tryClaim(ctx, teamID, problemID, actorIdentity, ipHash, ps.DeclaredCapacity)
		switch {
		case err == nil:
			slog.Info("slot claimed",
				"team_id", teamID,
				"problem_id", problemID,
				"claimed_by", actorIdentity,
				"attempts", attempt+1,
			)
			metrics.ObserveClaim(metrics.ResultClaimed, time.Since(start))
			return claim, nil

		case errors.Is(err, ErrAlreadyClaimed):
			metrics.ObserveClaim(metrics.ResultAlreadyClaimed, time.Since(start))
			return models.ClaimRecord{}, err

		case errors.Is(err, ErrCapacityExceeded):
			metrics.ObserveClaim(metrics.ResultCapacityExceeded, time.Since(start))
			return models.ClaimRecord{}, err

		case db.IsTransient(err):
			lastErr = err
			if attempt >= a.retryLimit {
				slog.Warn("claim retries exhausted",
					"team_id", teamID,
					"problem_id", problemID,
					"attempts", attempt+1,
					"error", lastErr,
				)
				metrics.ObserveClaim(metrics.ResultConflict, time.Since(start))
				return models.ClaimRecord{}, fmt.Errorf("%w: %v", ErrConflict, lastErr)
			}
			metrics.IncClaimRetry()
			if err := sleepBackoff(ctx, attempt); err != nil {
				metrics.ObserveClaim(metrics.ResultConflict, time.Since(start))
				return models.ClaimRecord{}, fmt.Errorf("%w: %v", ErrConflict, err)
			}

		default:
			metrics.ObserveClaim(metrics.ResultError, time.Since(start))
			return models.ClaimRecord{}, fmt.Errorf("claim transaction failed: %w", err)
		}
	}
}

// tryClaim runs one claim transaction attempt. Every precondition is
// re-checked against fresh reads inside the transaction; nothing read
// before the transaction began is trusted.
func (a *Allocator) tryClaim(ctx context.Context, teamID, problemID, actorIdentity, ipHash string, declaredCapacity int) (models.ClaimRecord, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return models.ClaimRecord{}, err
	}
	defer tx.Rollback()

	// Precondition 1: no existing claim for this team
	var existing string
	err = tx.QueryRowContext(ctx, `
		SELECT problem_id FROM team_claim WHERE team_id = $1
	`, teamID).Scan(&existing)
	if err == nil {
		return models.ClaimRecord{}, ErrAlreadyClaimed
	}
	if err != sql.ErrNoRows {
		return models.ClaimRecord{}, err
	}

	now := time.Now().UTC()

	// Lazily create the capacity row at its declared limit. A concurrent
	// creator winning the race is fine: DO NOTHING leaves their row.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO problem_capacity (problem_id, capacity_limit, claimed_count, last_updated_at)
		VALUES ($1, $2, 0, $3)
		ON CONFLICT (problem_id) DO NOTHING
	`, problemID, declaredCapacity, now)
	if err != nil {
		return models.ClaimRecord{}, err
	}

	// Precondition 2 + increment in one conditional write. The row lock
	// serializes racing claimers; a loser re-evaluates the WHERE against
	// the committed count, so the counter can never pass the limit.
	res, err := tx.ExecContext(ctx, `
		UPDATE problem_capacity
		SET claimed_count = claimed_count + 1, last_updated_at = $2
		WHERE problem_id = $1 AND claimed_count < capacity_limit
	`, problemID, now)
	if err != nil {
		return models.ClaimRecord{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.ClaimRecord{}, err
	}
	if affected == 0 {
		return models.ClaimRecord{}, ErrCapacityExceeded
	}

	// The primary key on team_id backstops precondition 1 when two
	// members of the same team race past the SELECT above. The losing
	// transaction rolls back, discarding its increment.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO team_claim (team_id, problem_id, claimed_by, claimed_at, ip_hash)
		VALUES ($1, $2, $3, $4, $5)
	`, teamID, problemID, actorIdentity, now, ipHash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return models.ClaimRecord{}, ErrAlreadyClaimed
		}
		return models.ClaimRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.ClaimRecord{}, err
	}

	return models.ClaimRecord{
		TeamID:    teamID,
		ProblemID: problemID,
		ClaimedBy: actorIdentity,
		ClaimedAt: now,
		IPHash:    ipHash,
	}, nil
}

// sleepBackoff waits for an exponentially growing, jittered interval, or
// until ctx is done.
func sleepBackoff(ctx context.Context, attempt int) error {
	d := baseBackoff << uint(attempt)
	d += time.Duration(rand.Int63n(int64(d)))

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
