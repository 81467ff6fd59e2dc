// Package emotion exposes the websocket ingest for expression frames and
// a read endpoint for the current label.
package emotion

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mindhavenapp/mindhaven/backend/internal/emotion"
	"github.com/mindhavenapp/mindhaven/backend/internal/metrics"
	"github.com/mindhavenapp/mindhaven/backend/pkg/utils"
)

type Handler struct {
	sampler  *emotion.Sampler
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func New(sampler *emotion.Sampler, logger *zap.Logger) *Handler {
	return &Handler{
		sampler: sampler,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The browser collaborator connects from the app origin;
			// CORS is handled globally, so accept the upgrade as-is.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/emotion/stream", h.handleStream)
	r.Get("/emotion/current", h.handleCurrent)
}

// frameMessage is one websocket message from the vision collaborator.
type frameMessage struct {
	Scores emotion.Frame `json:"scores"`
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.logger.Info("emotion stream connected", zap.String("remote", conn.RemoteAddr().String()))

	for {
		var msg frameMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("emotion stream closed unexpectedly", zap.Error(err))
			}
			return
		}

		h.sampler.Observe(msg.Scores)
		metrics.EmotionFrames.Inc()
	}
}

func (h *Handler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"label": h.sampler.Current()})
}
