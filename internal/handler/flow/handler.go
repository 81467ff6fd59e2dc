// Package flow streams per-session turn progress over SSE so the client
// can render the thinking indicator without polling.
package flow

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mindhavenapp/mindhaven/backend/internal/flow"
	"github.com/mindhavenapp/mindhaven/backend/pkg/utils"
)

// snapshotInterval paces the progress stream. The processing delay is
// seconds-scale, so a few updates per second is plenty.
const snapshotInterval = 250 * time.Millisecond

type Handler struct {
	flows  *flow.Registry
	logger *zap.Logger
}

func New(flows *flow.Registry, logger *zap.Logger) *Handler {
	return &Handler{flows: flows, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/flow/{sessionID}/progress", h.handleProgress)
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	machine, ok := h.flows.Get(sessionID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "no active turn for session")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	utils.SetupSSEHeaders(w)

	ticker := time.NewTicker(snapshotInterval)
	defer ticker.Stop()

	// Emit immediately, then on each tick until the turn settles or the
	// client goes away.
	st := machine.Snapshot()
	utils.SendSSEChunk(w, flusher, h.logger, st)

	for st.Step != flow.StepResult.String() {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			st = machine.Snapshot()
			utils.SendSSEChunk(w, flusher, h.logger, st)
		}
	}
}
