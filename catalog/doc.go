// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog supplies the static problem-statement catalog.

The catalog is authored in builtin.go and validated once at startup:

	cat := catalog.Default()
	ps, ok := cat.Get("ps-agritech-advisory")

Each entry declares the slot capacity the allocator uses when it lazily
creates the problem's capacity record. Entries are immutable at runtime;
editing the built-in list between events does not retro-apply to capacity
records already created under the old limits.
*/
package catalog
