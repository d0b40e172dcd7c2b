// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and backend selection.

# Backends

Open returns a handle for either backend:

	conn, err := db.Open("postgres", cfg.DatabaseURL)
	conn, err := db.Open("sqlite", "hackslot.db")

Postgres is the deployment backend; sqlite (modernc.org/sqlite, cgo-free)
serves single-binary dev setups. On sqlite the pool is capped at one
connection so concurrent writers queue instead of failing fast.

# Schema Creation

CreateSchema initializes all required tables; safe to call multiple times:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

# Tables

  - team: registered teams, tokens, and join codes
  - problem_capacity: claimed_count/capacity_limit per problem statement
  - team_claim: one row per team, the locked-in problem

	team 1──0..1 team_claim *──1 problem_capacity

On postgres a trigger fires NOTIFY 'capacity_change' on every committed
problem_capacity change; the status feed subscribes to that channel.

# Error Classification

IsUniqueViolation and IsTransient normalize backend-specific errors so
the allocator and team directory can branch on outcome, not driver.
*/
package db
