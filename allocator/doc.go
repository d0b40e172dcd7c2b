// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package allocator implements the concurrent slot-allocation core: teams
race to lock in one of a fixed set of problem statements, each problem
holding a limited number of team slots.

# Protocol

ClaimSlot runs one database transaction per attempt:

 1. Read the team's claim row; an existing row aborts with
    ErrAlreadyClaimed.
 2. Lazily create the problem's capacity row at its declared limit
    (ON CONFLICT DO NOTHING).
 3. Conditionally increment: UPDATE ... WHERE claimed_count <
    capacity_limit. Zero rows affected aborts with ErrCapacityExceeded.
 4. Insert the team's claim row; a primary-key violation (a same-team
    race) aborts with ErrAlreadyClaimed and rolls back the increment.

The conditional UPDATE takes the capacity row's lock, so racing claimers
serialize there and the losing transaction re-evaluates the predicate
against the committed count. claimed_count therefore never exceeds
capacity_limit, and a committed increment is always matched by exactly
one claim row.

# Retries

Serialization failures, deadlocks, and sqlite busy errors are transient:
ClaimSlot retries the whole transaction with jittered exponential backoff
up to the configured limit, then returns ErrConflict, which callers may
surface as retryable. ErrAlreadyClaimed and ErrCapacityExceeded are never
retried.

# Claim lifecycle

Unclaimed → Claimed(problemID); Claimed is terminal. There is no undo
operation: claims are final for the event duration.
*/
package allocator
