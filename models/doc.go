// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the
hackslot API.

# Domain Types

  - ProblemStatement: immutable catalog entry with declared slot capacity
  - CapacityRecord: per-problem claimed_count / capacity_limit counter
  - ClaimRecord: a team's single locked-in problem statement
  - Team: registered team with contact email and join code
  - CapacitySnapshot: one entry of the live counts feed

# Error Kinds

Handlers return ErrorResponse with a machine-readable kind in Error:

	{"error": "capacity_exceeded", "message": "..."}

Kinds: already_claimed, capacity_exceeded, unknown_problem, conflict,
bad_request, unauthorized, not_found, internal. The first three are
terminal for the caller; conflict is retryable after a backoff.
*/
package models
