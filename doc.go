// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the hackslot API server.

hackslot is the backend for a hackathon event site: team registration and
the problem-statement selection race, where registered teams claim one of
a fixed set of challenge topics before its slot capacity runs out.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3414 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or sqlite path
  - ADMIN_KEY_SALT (--admin-salt): Secret for the event admin key HMAC
  - JOIN_CODE_SALT (--join-salt): Secret for team join code generation

Optional settings:

  - PORT (-p): Server port (default: 3414)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - CLAIM_RETRY_LIMIT: Transparent claim transaction retries (default: 5)
  - FEED_POLL_INTERVAL_MS: Counts poll interval on sqlite (default: 2000)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - allocator: the transactional slot-claim core
  - status: read models: claim lookups, counts, and the live feed
  - catalog: the static problem-statement list
  - teamdir: team registration and token resolution
  - handlers: HTTP request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - auth: token generation and validation
  - db: schema creation and backend selection
  - metrics: Prometheus instrumentation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
