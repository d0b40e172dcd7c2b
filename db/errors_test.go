// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pq unique violation", &pq.Error{Code: "23505"}, true},
		{"pq serialization failure", &pq.Error{Code: "40001"}, false},
		{"wrapped pq unique violation", fmt.Errorf("insert failed: %w", &pq.Error{Code: "23505"}), true},
		{"sqlite unique constraint", errors.New("constraint failed: UNIQUE constraint failed: team_claim.team_id"), true},
		{"sqlite rowid constraint", errors.New("constraint failed (1555)"), true},
		{"unrelated error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pq serialization failure", &pq.Error{Code: "40001"}, true},
		{"pq deadlock", &pq.Error{Code: "40P01"}, true},
		{"pq unique violation", &pq.Error{Code: "23505"}, false},
		{"wrapped pq deadlock", fmt.Errorf("claim tx: %w", &pq.Error{Code: "40P01"}), true},
		{"sqlite busy", errors.New("SQLITE_BUSY: database is locked"), true},
		{"sqlite locked", errors.New("database is locked (5)"), true},
		{"sqlite table locked", errors.New("database table is locked"), true},
		{"unrelated error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
