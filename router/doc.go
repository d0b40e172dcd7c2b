// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method
routing.

NewRouter wires handlers to paths from a Deps bundle:

	mux := router.NewRouter(router.Deps{DB: conn, Cfg: cfg, ...})

See the handlers package for per-endpoint documentation.
*/
package router
