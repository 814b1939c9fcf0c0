// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
)

// PlaysHandler handles play-level result queries.
type PlaysHandler struct {
	deps Dependencies
}

// NewPlaysHandler creates a new plays handler.
func NewPlaysHandler(deps Dependencies) *PlaysHandler {
	return &PlaysHandler{deps: deps}
}

// playResponse is the GET /plays/{play_id} response shape.
type playResponse struct {
	PlayID   string          `json:"play_id"`
	Outcomes []model.Outcome `json:"outcomes"`
}

// HandleGetPlay handles GET /plays/{play_id} requests, returning every
// stored classification outcome for the play.
func (h *PlaysHandler) HandleGetPlay(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_play"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	playID := strings.TrimPrefix(r.URL.Path, "/plays/")
	if playID == "" || strings.Contains(playID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	outcomes, err := h.deps.PlayOutcomes(r.Context(), playID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	if outcomes == nil {
		outcomes = []model.Outcome{}
	}
	writeJSON(w, http.StatusOK, playResponse{PlayID: playID, Outcomes: outcomes})
}
