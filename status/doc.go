// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package status is the read path for claim and capacity state.

# Reader

Point reads used by handlers. GetClaim returns a team's claim or nil;
Counts returns one snapshot per catalog problem, treating a missing
capacity row as zero claims at the declared capacity. The Reader never
writes.

# Feed and Broadcaster

The Feed watches for committed capacity changes and pushes full count
snapshots into the Broadcaster, which fans them out to subscribers (one
websocket client each). Subscriber channels hold only the newest
snapshot: consumers may skip intermediate states but always converge on
the latest counts.

On postgres the Feed uses LISTEN/NOTIFY (pq.Listener reconnects
transparently; every reconnect triggers a full re-read). On sqlite it
polls at the configured interval and publishes only on change.
*/
package status
