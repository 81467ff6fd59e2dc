// Package vent exposes the venting shredder routes.
package vent

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	ventService "github.com/mindhavenapp/mindhaven/backend/internal/service/vent"
	"github.com/mindhavenapp/mindhaven/backend/internal/storage"
	"github.com/mindhavenapp/mindhaven/backend/pkg/utils"
)

type Handler struct {
	svc *ventService.Service
}

func New(svc *ventService.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/vents", h.handleWrite)
	r.Get("/vents/{ventID}", h.handleGet)
	r.Post("/vents/{ventID}/shred", h.handleShred)
}

func (h *Handler) handleWrite(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID  string `json:"userId"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" || strings.TrimSpace(payload.Content) == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId and content are required")
		return
	}

	session, err := h.svc.Write(r.Context(), payload.UserID, payload.Content)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to store vent")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Get(r.Context(), chi.URLParam(r, "ventID"))
	if errors.Is(err, storage.ErrVentNotFound) {
		utils.RespondError(w, http.StatusNotFound, "vent not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load vent")
		return
	}

	utils.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleShred(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Shred(r.Context(), chi.URLParam(r, "ventID"))
	if errors.Is(err, storage.ErrVentNotFound) {
		utils.RespondError(w, http.StatusNotFound, "vent not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to shred vent")
		return
	}

	utils.RespondJSON(w, http.StatusOK, session)
}
