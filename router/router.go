// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/hackforge/hackslot/allocator"
	"github.com/hackforge/hackslot/catalog"
	"github.com/hackforge/hackslot/cliparse"
	"github.com/hackforge/hackslot/handlers"
	"github.com/hackforge/hackslot/metrics"
	"github.com/hackforge/hackslot/middleware"
	"github.com/hackforge/hackslot/status"
	"github.com/hackforge/hackslot/teamdir"
)

// Deps packages the shared components the routes are built from.
type Deps struct {
	DB          *sql.DB
	Cfg         cliparse.Config
	Catalog     *catalog.Catalog
	Allocator   *allocator.Allocator
	Reader      *status.Reader
	Broadcaster *status.Broadcaster
	Directory   *teamdir.Directory
}

func NewRouter(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	teamHandler := handlers.NewTeamHandler(d.Directory)
	problemHandler := handlers.NewProblemHandler(d.Catalog, d.Reader)
	// Admin salt doubles as the IP-hash salt for the claim audit trail
	claimHandler := handlers.NewClaimHandler(d.Allocator, d.Reader, d.Directory, d.Cfg.AdminKeySalt)
	feedHandler := handlers.NewFeedHandler(d.Broadcaster)
	adminHandler := handlers.NewAdminHandler(d.DB, d.Cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Team directory
	mux.HandleFunc("POST /teams/register", middleware.WithLogging(teamHandler.Register))
	mux.HandleFunc("GET /teams/me", middleware.WithLogging(teamHandler.GetMe))
	mux.HandleFunc("GET /teams/{code}", middleware.WithLogging(teamHandler.GetByCode))

	// Problem statements (public)
	mux.HandleFunc("GET /problems", middleware.WithLogging(problemHandler.ListProblems))
	mux.HandleFunc("GET /problems/live", feedHandler.Live) // websocket, logs its own lifecycle
	mux.HandleFunc("GET /problems/{id}", middleware.WithLogging(problemHandler.GetProblem))

	// Slot claiming
	mux.HandleFunc("POST /claims", middleware.WithLogging(claimHandler.CreateClaim))
	mux.HandleFunc("GET /claims/me", middleware.WithLogging(claimHandler.GetMyClaim))

	// Organizer audit
	mux.HandleFunc("GET /admin/claims", middleware.WithLogging(adminHandler.ListClaims))

	// Operational
	mux.Handle("GET /metrics", metrics.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hackslot API v1"))
	})

	return mux
}
