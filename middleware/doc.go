// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: per-request structured logging with a request ID
  - CORS: cross-origin headers for the event frontend
  - JSONResponse / ErrorResponse: JSON encoding helpers; errors carry a
    machine-readable kind from the models package
  - ParseJSONBody: request body decoding
  - GetClientIP: client IP extraction behind proxies
*/
package middleware
