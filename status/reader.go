// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package status

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hackforge/hackslot/catalog"
	"github.com/hackforge/hackslot/models"
)

// Reader is the read-only view over capacity and claim state. It never
// writes; all mutation goes through the allocator.
type Reader struct {
	db      *sql.DB
	catalog *catalog.Catalog
}

func NewReader(conn *sql.DB, cat *catalog.Catalog) *Reader {
	return &Reader{db: conn, catalog: cat}
}

// GetClaim returns the team's claim, or nil when the team has not locked
// in a problem statement.
func (r *Reader) GetClaim(ctx context.Context, teamID string) (*models.ClaimRecord, error) {
	var claim models.ClaimRecord
	err := r.db.QueryRowContext(ctx, `
		SELECT team_id, problem_id, claimed_by, claimed_at
		FROM team_claim
		WHERE team_id = $1
	`, teamID).Scan(&claim.TeamID, &claim.ProblemID, &claim.ClaimedBy, &claim.ClaimedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read claim: %w", err)
	}
	return &claim, nil
}

// Counts returns one snapshot per catalog problem, in authored order.
// Problems whose capacity row has not been lazily created yet report a
// zero count at their declared capacity.
func (r *Reader) Counts(ctx context.Context) ([]models.CapacitySnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT problem_id, claimed_count, capacity_limit
		FROM problem_capacity
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read capacity counts: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]models.CapacitySnapshot)
	for rows.Next() {
		var snap models.CapacitySnapshot
		if err := rows.Scan(&snap.ProblemID, &snap.ClaimedCount, &snap.CapacityLimit); err != nil {
			return nil, fmt.Errorf("failed to scan capacity row: %w", err)
		}
		byID[snap.ProblemID] = snap
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read capacity counts: %w", err)
	}

	snaps := make([]models.CapacitySnapshot, 0, r.catalog.Len())
	for _, ps := range r.catalog.All() {
		if snap, ok := byID[ps.ID]; ok {
			snaps = append(snaps, snap)
			continue
		}
		snaps = append(snaps, models.CapacitySnapshot{
			ProblemID:     ps.ID,
			ClaimedCount:  0,
			CapacityLimit: ps.DeclaredCapacity,
		})
	}
	return snaps, nil
}
