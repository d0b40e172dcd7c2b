// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hackforge/hackslot/catalog"
	"github.com/hackforge/hackslot/middleware"
	"github.com/hackforge/hackslot/models"
	"github.com/hackforge/hackslot/status"
)

type ProblemHandler struct {
	catalog *catalog.Catalog
	reader  *status.Reader
}

func NewProblemHandler(cat *catalog.Catalog, reader *status.Reader) *ProblemHandler {
	return &ProblemHandler{catalog: cat, reader: reader}
}

// ListProblems handles GET /problems
// Returns the catalog joined with live claim counts.
func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.reader.Counts(r.Context())
	if err != nil {
		slog.Error("failed to read capacity counts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Database error")
		return
	}

	counts := make(map[string]models.CapacitySnapshot, len(snaps))
	for _, snap := range snaps {
		counts[snap.ProblemID] = snap
	}

	views := make([]models.ProblemView, 0, h.catalog.Len())
	for _, ps := range h.catalog.All() {
		snap := counts[ps.ID]
		views = append(views, models.ProblemView{
			ProblemStatement: ps,
			ClaimedCount:     snap.ClaimedCount,
			CapacityLimit:    snap.CapacityLimit,
			Full:             snap.ClaimedCount >= snap.CapacityLimit,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetProblem handles GET /problems/{id}
func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	problemID := r.PathValue("id")
	if problemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindBadRequest, "problem id is required")
		return
	}

	ps, ok := h.catalog.Get(problemID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, models.KindUnknownProblem, "Problem statement not found")
		return
	}

	snaps, err := h.reader.Counts(r.Context())
	if err != nil {
		slog.Error("failed to read capacity counts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.KindInternal, "Database error")
		return
	}

	view := models.ProblemView{ProblemStatement: ps}
	for _, snap := range snaps {
		if snap.ProblemID == problemID {
			view.ClaimedCount = snap.ClaimedCount
			view.CapacityLimit = snap.CapacityLimit
			view.Full = snap.ClaimedCount >= snap.CapacityLimit
			break
		}
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}
