// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hackforge/hackslot/middleware"
	"github.com/hackforge/hackslot/models"
	"github.com/hackforge/hackslot/teamdir"
)

type TeamHandler struct {
	dir *teamdir.Directory
}

func NewTeamHandler(dir *teamdir.Directory) *TeamHandler {
	return &TeamHandler{dir: dir}
}

// Register handles POST /teams/register
func (h *TeamHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterTeamRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "Invalid JSON")
		return
	}

	if len(req.TeamName) < 2 || len(req.TeamName) > 60 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "team_name must be 2-60 characters")
		return
	}
	if !strings.Contains(req.Email, "@") {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "a valid email is required")
		return
	}

	team, token, err := h.dir.Register(r.Context(), req.TeamName, req.Email)
	if err != nil {
		if errors.Is(err, teamdir.ErrEmailRegistered) {
			middleware.ErrorResponse(w, http.StatusConflict, models.KindBadRequest, "Email is already registered to a team")
			return
		}
		slog.Error("failed to register team", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Failed to register team")
		return
	}

	slog.Info("team registered", "team_id", team.ID, "team_name", team.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterTeamResponse{
		TeamID:    team.ID,
		TeamToken: token,
		JoinCode:  team.JoinCode,
	})
}

// GetMe handles GET /teams/me
func (h *TeamHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	team, ok := resolveTeam(w, r, h.dir)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TeamResponse{
		TeamID:   team.ID,
		TeamName: team.Name,
		JoinCode: team.JoinCode,
	})
}

// GetByCode handles GET /teams/{code}
// Public lookup by join code; exposes name only.
func (h *TeamHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if code == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "join code is required")
		return
	}

	team, err := h.dir.ByJoinCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, teamdir.ErrUnknownCode) {
			middleware.ErrorResponse(w, http.StatusNotFound, models.KindNotFound, "Team not found")
			return
		}
		slog.Error("failed to look up join code", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TeamResponse{
		TeamID:   team.ID,
		TeamName: team.Name,
	})
}
