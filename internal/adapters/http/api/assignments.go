// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/features"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
)

// AssignmentsHandler handles the bulk reclassification endpoints.
type AssignmentsHandler struct {
	deps Dependencies
}

// NewAssignmentsHandler creates a new assignments handler.
func NewAssignmentsHandler(deps Dependencies) *AssignmentsHandler {
	return &AssignmentsHandler{deps: deps}
}

// assignmentRequest mirrors the POST /assignments schema.
type assignmentRequest struct {
	AssignmentID string          `json:"assignment_id"`
	PlayID       string          `json:"play_id"`
	Kind         string          `json:"kind"`
	Path         geometry.Path   `json:"path"`
	PlayerSide   string          `json:"player_side,omitempty"`
	PlayerStartX float64         `json:"player_start_x,omitempty"`
	PlayerStartY float64         `json:"player_start_y,omitempty"`
	Field        *geometry.Field `json:"field,omitempty"`
}

func (a assignmentRequest) validate() error {
	switch {
	case strings.TrimSpace(a.AssignmentID) == "":
		return errors.New("missing assignment_id")
	case strings.TrimSpace(a.PlayID) == "":
		return errors.New("missing play_id")
	case !model.Kind(a.Kind).Valid():
		return errors.New("kind must be one of route, blocking, coverage, gap, motion")
	}
	switch a.PlayerSide {
	case "", string(features.SideOffense), string(features.SideDefense):
		return nil
	default:
		return errors.New("player_side must be offense or defense")
	}
}

// assignment converts the request into the queue job model.
func (a assignmentRequest) assignment() model.Assignment {
	side := features.PlayerSide(a.PlayerSide)
	if side == "" {
		side = features.SideOffense
	}
	job := model.Assignment{
		AssignmentID: a.AssignmentID,
		PlayID:       a.PlayID,
		Kind:         model.Kind(a.Kind),
		Path:         a.Path,
		PlayerSide:   side,
		PlayerStartX: a.PlayerStartX,
		PlayerStartY: a.PlayerStartY,
	}
	if a.Field != nil {
		job.Field = *a.Field
	}
	return job
}

// HandlePostAssignment handles POST /assignments requests.
func (h *AssignmentsHandler) HandlePostAssignment(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_assignment"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req assignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	// Idempotency check - mark as seen first.
	if h.deps.SeenAndRecord(r.Context(), req.AssignmentID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	if ok := h.deps.Enqueue(r.Context(), req.assignment()); !ok {
		// Roll back the seen mark so the job can be retried.
		h.deps.Unrecord(r.Context(), req.AssignmentID)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Duplicate: false})
}

// HandleGetAssignment handles GET /assignments/{assignment_id} requests.
func (h *AssignmentsHandler) HandleGetAssignment(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_assignment"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/assignments/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	outcome, err := h.deps.Outcome(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}
