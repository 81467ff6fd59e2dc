// Package journal defines the structured records the bots write alongside
// conversations: one row per classification or journaling event, owned by
// the user who created it.
package journal

import "time"

// Tombstone replaces a venting session's content once it is shredded.
const Tombstone = "[SHREDDED]"

// MoodEntry records one Triple-M check-in together with the
// recommendations it produced.
type MoodEntry struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	Mood                string    `json:"mood"`
	Intensity           int       `json:"intensity"`
	MusicRecommendation []string  `json:"musicRecommendation"`
	MindfulnessExercise string    `json:"mindfulnessExercise"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// GratitudeEntry records one gratitude note and whether the daily
// challenge was accepted with it.
type GratitudeEntry struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	GratitudeText        string    `json:"gratitudeText"`
	ChallengeCompleted   bool      `json:"challengeCompleted"`
	ChallengeDescription string    `json:"challengeDescription,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// DistortionRecord correlates one detected cognitive distortion with the
// thought that triggered it and the reframe that was offered. Write-once.
type DistortionRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	DistortionType  string    `json:"distortionType"`
	OriginalThought string    `json:"originalThought"`
	ReframedThought string    `json:"reframedThought"`
	CreatedAt       time.Time `json:"createdAt"`
}

// VentingSession holds one vented text until it is shredded. Shredding
// overwrites Content with a tombstone and stamps ShreddedAt; the row
// itself survives.
type VentingSession struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Content    string     `json:"content"`
	IsShredded bool       `json:"isShredded"`
	ShreddedAt *time.Time `json:"shreddedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// SleepSession marks the start of one night-time chat.
type SleepSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StartTime time.Time `json:"startTime"`
	CreatedAt time.Time `json:"createdAt"`
}
