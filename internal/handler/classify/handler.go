// Package classify exposes the classification facade over HTTP.
package classify

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	classifyService "github.com/mindhavenapp/mindhaven/backend/internal/service/classify"
	"github.com/mindhavenapp/mindhaven/backend/pkg/utils"
)

type Handler struct {
	svc    *classifyService.Service
	logger *zap.Logger
}

func New(svc *classifyService.Service, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Handle serves POST /classify. Missing fields are a caller error; a
// body that cannot be parsed at all is reported as an internal failure,
// matching the facade's published contract.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
		BotType string `json:"botType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error("classify request body unreadable", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if payload.Message == "" || payload.BotType == "" {
		utils.RespondError(w, http.StatusBadRequest, "Message and botType are required")
		return
	}

	response := h.svc.Classify(payload.Message, payload.BotType)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"response": response})
}
