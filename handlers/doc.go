// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the hackslot API.

# Handler Types

Each handler is a struct created via a constructor taking its
dependencies:

  - TeamHandler: team registration and lookup
  - ProblemHandler: catalog with live claim counts
  - ClaimHandler: slot claiming and the team's own claim
  - FeedHandler: websocket stream of capacity snapshots
  - AdminHandler: event-organizer audit views

# Selection Flow

Teams register once, then race to lock in a problem statement:

	POST /teams/register      → Register (returns team_token + join_code)
	GET  /problems            → ListProblems (counts + full flags)
	POST /claims              → CreateClaim (one per team, final)
	GET  /claims/me           → GetMyClaim
	GET  /problems/live       → Live (websocket counts feed)

Team operations require the X-Team-Token header. A claim attempt ends in
exactly one of: 201 claimed, 409 already_claimed, 409 capacity_exceeded,
404 unknown_problem, or 503 conflict (retryable). After a client-side
timeout the UI must GET /claims/me before retrying; a timed-out claim may
have committed.

Admin operations (GET /admin/claims) require the X-Admin-Key header.
*/
package handlers
