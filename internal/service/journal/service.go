// Package journal implements the record-keeping bots: mood check-ins,
// gratitude entries, and distortion analysis.
package journal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindhavenapp/mindhaven/backend/internal/analysis/rules"
	"github.com/mindhavenapp/mindhaven/backend/internal/catalog"
	"github.com/mindhavenapp/mindhaven/backend/internal/metrics"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/bot"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/journal"
	"github.com/mindhavenapp/mindhaven/backend/internal/storage"
)

var ErrUnknownMood = errors.New("unknown mood")

// Service backs the Triple-M, gratitude, and distortion bots.
type Service struct {
	store  storage.Store
	picker catalog.Intner
	logger *zap.Logger
}

func NewService(store storage.Store, picker catalog.Intner, logger *zap.Logger) *Service {
	return &Service{store: store, picker: picker, logger: logger}
}

// Recommendation is the Triple-M outcome for one mood check-in.
type Recommendation struct {
	Entry       journal.MoodEntry `json:"entry"`
	Music       []string          `json:"music"`
	Mindfulness string            `json:"mindfulness"`
}

// RecordMood persists a mood entry together with the music and
// mindfulness recommendations derived from it.
func (s *Service) RecordMood(ctx context.Context, userID, mood string, intensity int, notes string) (*Recommendation, error) {
	music, ok := catalog.MusicPlaylists[mood]
	if !ok {
		return nil, ErrUnknownMood
	}
	mindfulness := catalog.MindfulnessExercises[mood]

	metrics.Classifications.WithLabelValues(string(bot.TripleM)).Inc()

	entry := journal.MoodEntry{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Mood:                mood,
		Intensity:           intensity,
		MusicRecommendation: music,
		MindfulnessExercise: mindfulness,
		Notes:               notes,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.store.CreateMoodEntry(ctx, &entry); err != nil {
		metrics.StoreWriteFailures.Inc()
		s.logger.Error("failed to persist mood entry", zap.Error(err), zap.String("user", userID))
	}

	return &Recommendation{Entry: entry, Music: music, Mindfulness: mindfulness}, nil
}

// DailyChallenge picks one challenge from the pool.
func (s *Service) DailyChallenge() string {
	return catalog.DailyChallenges[s.picker.Intn(len(catalog.DailyChallenges))]
}

// RecordGratitude persists one gratitude entry. The challenge
// description is stored only when the challenge was completed.
func (s *Service) RecordGratitude(ctx context.Context, userID, text string, challengeCompleted bool, challenge string) (*journal.GratitudeEntry, error) {
	entry := journal.GratitudeEntry{
		ID:                 uuid.NewString(),
		UserID:             userID,
		GratitudeText:      text,
		ChallengeCompleted: challengeCompleted,
		CreatedAt:          time.Now().UTC(),
	}
	if challengeCompleted {
		entry.ChallengeDescription = challenge
	}

	metrics.Classifications.WithLabelValues(string(bot.Gratitude)).Inc()

	if err := s.store.CreateGratitudeEntry(ctx, &entry); err != nil {
		metrics.StoreWriteFailures.Inc()
		s.logger.Error("failed to persist gratitude entry", zap.Error(err), zap.String("user", userID))
	}
	return &entry, nil
}

// RecentGratitude lists the user's latest entries, newest first.
func (s *Service) RecentGratitude(ctx context.Context, userID string, limit int) ([]journal.GratitudeEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.store.ListGratitudeEntries(ctx, userID, limit)
}

// Analysis is the distortion spotter's outcome for one thought.
type Analysis struct {
	Detected []catalog.DistortionInfo `json:"detected"`
	Reframe  string                   `json:"reframe"`
}

// AnalyzeThought runs the multi-match distortion table, reframes against
// the first detected distortion, and writes one record per detection.
func (s *Service) AnalyzeThought(ctx context.Context, userID, thought string) (*Analysis, error) {
	cats := rules.DistortionTable.Classify(thought)
	reframe := catalog.Reframes.SelectFirst(cats)

	metrics.Classifications.WithLabelValues(string(bot.CognitiveDistortion)).Inc()

	detected := make([]catalog.DistortionInfo, 0, len(cats))
	for _, c := range cats {
		detected = append(detected, catalog.Distortions[c])

		rec := journal.DistortionRecord{
			ID:              uuid.NewString(),
			UserID:          userID,
			DistortionType:  string(c),
			OriginalThought: thought,
			ReframedThought: reframe,
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.store.CreateDistortionRecord(ctx, &rec); err != nil {
			metrics.StoreWriteFailures.Inc()
			s.logger.Error("failed to persist distortion record", zap.Error(err), zap.String("user", userID))
		}
	}

	return &Analysis{Detected: detected, Reframe: reframe}, nil
}
