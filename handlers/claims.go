// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hackforge/hackslot/allocator"
	"github.com/hackforge/hackslot/auth"
	"github.com/hackforge/hackslot/middleware"
	"github.com/hackforge/hackslot/models"
	"github.com/hackforge/hackslot/status"
	"github.com/hackforge/hackslot/teamdir"
)

type ClaimHandler struct {
	alloc  *allocator.Allocator
	reader *status.Reader
	dir    *teamdir.Directory
	ipSalt string
}

func NewClaimHandler(alloc *allocator.Allocator, reader *status.Reader, dir *teamdir.Directory, ipSalt string) *ClaimHandler {
	return &ClaimHandler{alloc: alloc, reader: reader, dir: dir, ipSalt: ipSalt}
}

// CreateClaim handles POST /claims
// Locks in a problem statement for the calling team. Final: there is no
// un-claim endpoint.
func (h *ClaimHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	team, ok := resolveTeam(w, r, h.dir)
	if !ok {
		return
	}

	var req models.ClaimRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}
	if req.ProblemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "problem_id is required")
		return
	}

	// The authenticated actor, recorded for audit. The auth provider in
	// front of this API verifies the email; absent the header, fall back
	// to the team's registered contact.
	actor := r.Header.Get("X-Actor-Email")
	if actor == "" {
		actor = team.Email
	}

	// Get IP hash for the audit trail
	clientIP := middleware.GetClientIP(r)
	ipHash := auth.HashIP(clientIP, h.ipSalt)

	claim, err := h.alloc.ClaimSlot(r.Context(), team.ID, req.ProblemID, actor, ipHash)
	switch {
	case err == nil:
		middleware.JSONResponse(w, http.StatusCreated, models.ClaimResponse{
			Claim:   claim,
			Message: "Problem statement locked in",
		})

	case errors.Is(err, allocator.ErrAlreadyClaimed):
		middleware.ErrorResponse(w, http.StatusConflict, models.KindAlreadyClaimed,
			"Your team has already locked in a problem statement")

	case errors.Is(err, allocator.ErrCapacityExceeded):
		middleware.ErrorResponse(w, http.StatusConflict, models.KindCapacityExceeded,
			"This problem statement has no slots left, pick another")

	case errors.Is(err, allocator.ErrUnknownProblem):
		middleware.ErrorResponse(w, http.StatusNotFound, models.KindUnknownProblem,
			"Problem statement not found")

	case errors.Is(err, allocator.ErrConflict):
		w.Header().Set("Retry-After", "1")
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, models.KindConflict,
			"Claims are racing right now, try again in a moment")

	default:
		slog.Error("claim failed", "error", err, "team_id", team.ID, "problem_id", req.ProblemID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Failed to claim slot")
	}
}

// GetMyClaim handles GET /claims/me
// Returns the calling team's claim, or a null claim when none exists.
// Clients that hit a timeout on POST /claims must call this before
// retrying, to distinguish a slow success from a failure.
func (h *ClaimHandler) GetMyClaim(w http.ResponseWriter, r *http.Request) {
	team, ok := resolveTeam(w, r, h.dir)
	if !ok {
		return
	}

	claim, err := h.reader.GetClaim(r.Context(), team.ID)
	if err != nil {
		slog.Error("failed to read claim", "error", err, "team_id", team.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyClaimResponse{Claim: claim})
}

// resolveTeam authenticates the request via the X-Team-Token header.
// Writes the error response itself when authentication fails.
func resolveTeam(w http.ResponseWriter, r *http.Request, dir *teamdir.Directory) (models.Team, bool) {
	token := r.Header.Get("X-Team-Token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.KindUnauthorized, "X-Team-Token header required")
		return models.Team{}, false
	}

	team, err := dir.ResolveToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, teamdir.ErrUnknownToken) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, models.KindUnauthorized, "Invalid team token")
			return models.Team{}, false
		}
		slog.Error("failed to resolve team token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Database error")
		return models.Team{}, false
	}
	return team, true
}
