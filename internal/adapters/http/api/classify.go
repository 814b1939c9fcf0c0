// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/model"
)

// ClassifyHandler handles the synchronous classification endpoints the
// editor calls during live preview.
type ClassifyHandler struct {
	deps Dependencies
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(deps Dependencies) *ClassifyHandler {
	return &ClassifyHandler{deps: deps}
}

// HandleClassify handles POST /classify/{kind} requests, where kind is
// one of route, blocking, coverage, gap, motion.
func (h *ClassifyHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	const op = "api.classify"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	kind := model.Kind(strings.TrimPrefix(r.URL.Path, "/classify/"))
	if !kind.Valid() {
		writeError(w, http.StatusNotFound, "unknown_kind", NewKind(op, ErrUnknownKind))
		return
	}

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	ctx := r.Context()
	switch kind {
	case model.KindRoute:
		side, err := req.playerSide()
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		res, options := h.deps.ClassifyRoute(ctx, req.Path, side, req.PlayerStartX, req.field())
		writeJSON(w, http.StatusOK, routeResponse{RouteResult: res, Options: options})
	case model.KindBlocking:
		writeJSON(w, http.StatusOK, h.deps.ClassifyBlocking(ctx, req.Path))
	case model.KindCoverage:
		writeJSON(w, http.StatusOK, h.deps.ClassifyCoverage(ctx, req.Path, req.PlayerStartY, req.field()))
	case model.KindGap:
		writeJSON(w, http.StatusOK, h.deps.ClassifyGap(ctx, req.Path, req.field()))
	case model.KindMotion:
		writeJSON(w, http.StatusOK, h.deps.ClassifyMotion(ctx, req.Path, req.PlayerStartX, req.field()))
	}
}
