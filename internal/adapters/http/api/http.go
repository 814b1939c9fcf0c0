// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/adapters/repository"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/classify"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/features"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Synchronous classification for live preview.
	ClassifyRoute(ctx context.Context, path geometry.Path, side features.PlayerSide, playerStartX float64, field geometry.Field) (classify.RouteResult, []classify.RouteLabel)
	ClassifyBlocking(ctx context.Context, path geometry.Path) classify.BlockingResult
	ClassifyCoverage(ctx context.Context, path geometry.Path, playerStartY float64, field geometry.Field) classify.CoverageResult
	ClassifyGap(ctx context.Context, path geometry.Path, field geometry.Field) classify.GapResult
	ClassifyMotion(ctx context.Context, path geometry.Path, playerStartX float64, field geometry.Field) classify.MotionResult

	// Bulk reclassification pipeline.
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)
	Enqueue(ctx context.Context, a model.Assignment) bool
	Outcome(ctx context.Context, assignmentID string) (model.Outcome, error)
	PlayOutcomes(ctx context.Context, playID string) ([]model.Outcome, error)
}

// StatsProvider exposes a service statistics snapshot.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	classifyHandler    *ClassifyHandler
	assignmentsHandler *AssignmentsHandler
	playsHandler       *PlaysHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		classifyHandler:    NewClassifyHandler(deps),
		assignmentsHandler: NewAssignmentsHandler(deps),
		playsHandler:       NewPlaysHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/classify/", MetricsMiddleware(s.classifyHandler.HandleClassify, "classify"))
	mux.HandleFunc("/assignments", MetricsMiddleware(s.assignmentsHandler.HandlePostAssignment, "assignments"))
	mux.HandleFunc("/assignments/", MetricsMiddleware(s.assignmentsHandler.HandleGetAssignment, "assignment"))
	mux.HandleFunc("/plays/", MetricsMiddleware(s.playsHandler.HandleGetPlay, "plays"))
}

// classifyRequest is the shared request shape for POST /classify/{kind}.
// Kind-specific fields are ignored where a classifier does not use them.
type classifyRequest struct {
	Path         geometry.Path   `json:"path"`
	PlayerSide   string          `json:"player_side,omitempty"`
	PlayerStartX float64         `json:"player_start_x,omitempty"`
	PlayerStartY float64         `json:"player_start_y,omitempty"`
	Field        *geometry.Field `json:"field,omitempty"`
}

// field returns the per-request field geometry, or the zero value to
// select the service default.
func (r classifyRequest) field() geometry.Field {
	if r.Field != nil {
		return *r.Field
	}
	return geometry.Field{}
}

// playerSide parses the optional player side, defaulting to offense.
func (r classifyRequest) playerSide() (features.PlayerSide, error) {
	switch r.PlayerSide {
	case "", string(features.SideOffense):
		return features.SideOffense, nil
	case string(features.SideDefense):
		return features.SideDefense, nil
	default:
		return "", errors.New("player_side must be offense or defense")
	}
}

// routeResponse augments a route classification with the ranked
// override options for the confirmation dialog.
type routeResponse struct {
	classify.RouteResult
	Options []classify.RouteLabel `json:"options"`
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
