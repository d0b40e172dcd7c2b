// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and validation primitives.

# Team Tokens

Random 192-bit URL-safe tokens issued at registration; a team's token is
its credential for claim operations:

	token, err := auth.GenerateTeamToken()

# Event Admin Key

A deterministic HMAC over a fixed scope string, derived from
ADMIN_KEY_SALT, validated with constant-time comparison:

	key := auth.GenerateAdminKey(cfg.AdminKeySalt)
	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKeySalt)

# Join Codes

Short base62 codes derived from the team ID via HMAC, used by teammates
to reference the team without exposing the token.
*/
package auth
