// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/hackforge/hackslot/auth"
	"github.com/hackforge/hackslot/cliparse"
	"github.com/hackforge/hackslot/middleware"
	"github.com/hackforge/hackslot/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// ListClaims handles GET /admin/claims
// Audit listing of every claim on record, newest first.
func (h *AdminHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.KindUnauthorized, "Invalid admin key")
		return
	}

	rows, err := h.db.QueryContext(r.Context(), `
		SELECT team_id, problem_id, claimed_by, claimed_at
		FROM team_claim
		ORDER BY claimed_at DESC
	`)
	if err != nil {
		slog.Error("failed to query claims", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Database error")
		return
	}
	defer rows.Close()

	claims := []models.ClaimRecord{}
	for rows.Next() {
		var c models.ClaimRecord
		if err := rows.Scan(&c.TeamID, &c.ProblemID, &c.ClaimedBy, &c.ClaimedAt); err != nil {
			slog.Error("failed to scan claim", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Database error")
			return
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read claims", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, claims)
}
