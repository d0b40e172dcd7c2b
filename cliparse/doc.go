// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Flags take precedence over environment variables.

# Settings

Required:

  - DATABASE_URL (-d): PostgreSQL connection string, or a sqlite path/DSN
  - ADMIN_KEY_SALT (--admin-salt): Secret for the event admin key HMAC
  - JOIN_CODE_SALT (--join-salt): Secret for team join code generation

Optional:

  - PORT (-p): Server port (default: 3414)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - CLAIM_RETRY_LIMIT (--claim-retries): Transparent retries for
    conflicting claim transactions (default: 5)
  - FEED_POLL_INTERVAL_MS (--feed-poll-ms): Capacity feed poll interval
    when running on sqlite, which has no LISTEN/NOTIFY (default: 2000)
*/
package cliparse
