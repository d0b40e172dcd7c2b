// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package teamdir is the team directory: registration and token-to-team
resolution.

The allocator deduplicates claims on team ID only; this package supplies
that ID. A team registers once with a contact email (unique), receiving
a secret team token used for claim operations and a short join code
teammates can share:

	team, token, err := dir.Register(ctx, "Null Pointers", "lead@example.com")
	team, err = dir.ResolveToken(ctx, token)

Two members of the same team racing to claim are not pre-arbitrated
here; the allocator's single-claim invariant picks the winner.
*/
package teamdir
