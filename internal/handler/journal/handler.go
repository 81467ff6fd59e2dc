// Package journal exposes the mood, gratitude, and distortion routes.
package journal

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	journalService "github.com/mindhavenapp/mindhaven/backend/internal/service/journal"
	"github.com/mindhavenapp/mindhaven/backend/pkg/utils"
)

type Handler struct {
	svc *journalService.Service
}

func New(svc *journalService.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/moods", h.handleRecordMood)
	r.Post("/gratitude", h.handleRecordGratitude)
	r.Get("/gratitude", h.handleRecentGratitude)
	r.Get("/gratitude/challenge", h.handleDailyChallenge)
	r.Post("/distortions/analyze", h.handleAnalyzeThought)
}

func (h *Handler) handleRecordMood(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID    string `json:"userId"`
		Mood      string `json:"mood"`
		Intensity int    `json:"intensity"`
		Notes     string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" || payload.Mood == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId and mood are required")
		return
	}

	rec, err := h.svc.RecordMood(r.Context(), payload.UserID, payload.Mood, payload.Intensity, payload.Notes)
	if errors.Is(err, journalService.ErrUnknownMood) {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to record mood")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleRecordGratitude(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID               string `json:"userId"`
		GratitudeText        string `json:"gratitudeText"`
		ChallengeCompleted   bool   `json:"challengeCompleted"`
		ChallengeDescription string `json:"challengeDescription"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" || strings.TrimSpace(payload.GratitudeText) == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId and gratitudeText are required")
		return
	}

	entry, err := h.svc.RecordGratitude(r.Context(), payload.UserID, payload.GratitudeText,
		payload.ChallengeCompleted, payload.ChallengeDescription)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to record gratitude")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleRecentGratitude(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.svc.RecentGratitude(r.Context(), userID, limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load entries")
		return
	}

	utils.RespondJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleDailyChallenge(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"challenge": h.svc.DailyChallenge()})
}

func (h *Handler) handleAnalyzeThought(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID  string `json:"userId"`
		Thought string `json:"thought"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" || strings.TrimSpace(payload.Thought) == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId and thought are required")
		return
	}

	analysis, err := h.svc.AnalyzeThought(r.Context(), payload.UserID, payload.Thought)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to analyze thought")
		return
	}

	utils.RespondJSON(w, http.StatusOK, analysis)
}
