// Package storage persists conversations, messages, and the bots'
// structured records. Two implementations exist: PostgresStore for real
// deployments and MemoryStore for tests and local runs.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mindhavenapp/mindhaven/backend/internal/model/bot"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/chat"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/journal"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrVentNotFound         = errors.New("venting session not found")
)

// Store is the keyed record store behind every bot. All writes carry the
// caller-assigned id and timestamps; message appends preserve submission
// order per conversation.
type Store interface {
	CreateConversation(ctx context.Context, conv *chat.Conversation) error
	GetConversation(ctx context.Context, id string) (*chat.Conversation, error)
	// FindConversation returns the newest conversation for the
	// (user, bot) pair, or ErrConversationNotFound.
	FindConversation(ctx context.Context, userID string, botType bot.Type) (*chat.Conversation, error)
	UpdateConversationTitle(ctx context.Context, id, title string) error

	AppendMessage(ctx context.Context, msg *chat.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]chat.Message, error)

	CreateMoodEntry(ctx context.Context, entry *journal.MoodEntry) error
	CreateGratitudeEntry(ctx context.Context, entry *journal.GratitudeEntry) error
	ListGratitudeEntries(ctx context.Context, userID string, limit int) ([]journal.GratitudeEntry, error)
	CreateDistortionRecord(ctx context.Context, rec *journal.DistortionRecord) error

	CreateVentingSession(ctx context.Context, session *journal.VentingSession) error
	GetVentingSession(ctx context.Context, id string) (*journal.VentingSession, error)
	// ShredVentingSession tombstones the content and stamps the deletion
	// time. Shredding an already-shredded session is a no-op.
	ShredVentingSession(ctx context.Context, id string, at time.Time) error

	CreateSleepSession(ctx context.Context, session *journal.SleepSession) error

	Close() error
}
