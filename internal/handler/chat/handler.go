// Package chat exposes session and message routes.
package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mindhavenapp/mindhaven/backend/internal/model/bot"
	chatService "github.com/mindhavenapp/mindhaven/backend/internal/service/chat"
	"github.com/mindhavenapp/mindhaven/backend/internal/storage"
	"github.com/mindhavenapp/mindhaven/backend/pkg/utils"
)

type Handler struct {
	svc *chatService.Service
}

func New(svc *chatService.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/bots", h.handleListBots)
	r.Post("/sessions", h.handleStartSession)
	r.Post("/sessions/{sessionID}/messages", h.handleSendMessage)
	r.Get("/sessions/{sessionID}/messages", h.handleTranscript)
}

func (h *Handler) handleListBots(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, bot.All())
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID  string `json:"userId"`
		BotType string `json:"botType"`
		Title   string `json:"title"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" || payload.BotType == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId and botType are required")
		return
	}

	session, err := h.svc.StartSession(r.Context(), payload.UserID, bot.Type(payload.BotType), payload.Title)
	if errors.Is(err, chatService.ErrUnknownBot) {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Content) == "" {
		utils.RespondError(w, http.StatusBadRequest, "content is required")
		return
	}

	turn, err := h.svc.Respond(r.Context(), sessionID, payload.Content)
	switch {
	case errors.Is(err, storage.ErrConversationNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, chatService.ErrUnsupportedBot):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		utils.RespondError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	utils.RespondJSON(w, http.StatusOK, turn)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	msgs, err := h.svc.Transcript(r.Context(), sessionID)
	if errors.Is(err, storage.ErrConversationNotFound) {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load transcript")
		return
	}

	utils.RespondJSON(w, http.StatusOK, msgs)
}
