package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mindhavenapp/mindhaven/backend/internal/model/bot"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/chat"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/journal"
)

func newConversation(userID string, t bot.Type) *chat.Conversation {
	now := time.Now().UTC()
	return &chat.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		BotType:   t,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMessageRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	conv := newConversation("u1", bot.MicroTherapy)
	if err := store.CreateConversation(ctx, conv); err != nil {
		t.Fatalf("CreateConversation err: %v", err)
	}

	content := "I feel so anxious about the exam"
	msg := &chat.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           chat.RoleUser,
		Content:        content,
		Metadata:       map[string]string{"detected_emotion": "fearful"},
		CreatedAt:      time.Now().UTC(),
	}
	if err := store.AppendMessage(ctx, msg); err != nil {
		t.Fatalf("AppendMessage err: %v", err)
	}

	msgs, err := store.ListMessages(ctx, conv.ID)
	if err != nil {
		t.Fatalf("ListMessages err: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Content != content {
		t.Fatalf("content round-trip mismatch: %q vs %q", msgs[0].Content, content)
	}
	if msgs[0].Metadata["detected_emotion"] != "fearful" {
		t.Fatalf("metadata lost: %v", msgs[0].Metadata)
	}
}

func TestMessagesKeepFIFOOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	conv := newConversation("u1", bot.SleepGuardian)
	if err := store.CreateConversation(ctx, conv); err != nil {
		t.Fatalf("CreateConversation err: %v", err)
	}

	// A single timestamp for every message: submission order must hold
	// even when created_at cannot break the tie.
	now := time.Now().UTC()
	want := []string{"first", "second", "third", "fourth"}
	for _, c := range want {
		msg := &chat.Message{
			ID:             uuid.NewString(),
			ConversationID: conv.ID,
			Role:           chat.RoleUser,
			Content:        c,
			CreatedAt:      now,
		}
		if err := store.AppendMessage(ctx, msg); err != nil {
			t.Fatalf("AppendMessage err: %v", err)
		}
	}

	msgs, err := store.ListMessages(ctx, conv.ID)
	if err != nil {
		t.Fatalf("ListMessages err: %v", err)
	}
	for i, c := range want {
		if msgs[i].Content != c {
			t.Fatalf("order broken at %d: got %q want %q", i, msgs[i].Content, c)
		}
	}
}

func TestAppendToMissingConversation(t *testing.T) {
	store := NewMemoryStore()
	msg := &chat.Message{ID: uuid.NewString(), ConversationID: "missing", Role: chat.RoleUser, Content: "x"}
	if err := store.AppendMessage(context.Background(), msg); err != ErrConversationNotFound {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestFindConversationReturnsNewest(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	older := newConversation("u1", bot.SleepGuardian)
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := newConversation("u1", bot.SleepGuardian)
	other := newConversation("u2", bot.SleepGuardian)

	for _, c := range []*chat.Conversation{older, newer, other} {
		if err := store.CreateConversation(ctx, c); err != nil {
			t.Fatalf("CreateConversation err: %v", err)
		}
	}

	got, err := store.FindConversation(ctx, "u1", bot.SleepGuardian)
	if err != nil {
		t.Fatalf("FindConversation err: %v", err)
	}
	if got.ID != newer.ID {
		t.Fatalf("expected newest conversation %s, got %s", newer.ID, got.ID)
	}

	if _, err := store.FindConversation(ctx, "u1", bot.TripleM); err != ErrConversationNotFound {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
}

func TestShredIsOneWayAndIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	v := &journal.VentingSession{
		ID:        uuid.NewString(),
		UserID:    "u1",
		Content:   "everything that went wrong today",
		CreatedAt: time.Now().UTC(),
	}
	if err := store.CreateVentingSession(ctx, v); err != nil {
		t.Fatalf("CreateVentingSession err: %v", err)
	}

	first := time.Now().UTC()
	if err := store.ShredVentingSession(ctx, v.ID, first); err != nil {
		t.Fatalf("ShredVentingSession err: %v", err)
	}

	got, err := store.GetVentingSession(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetVentingSession err: %v", err)
	}
	if !got.IsShredded || got.Content != journal.Tombstone {
		t.Fatalf("shred did not tombstone: %+v", got)
	}
	if got.ShreddedAt == nil || !got.ShreddedAt.Equal(first) {
		t.Fatalf("shredded_at not stamped: %v", got.ShreddedAt)
	}

	// Second shred must not move the timestamp or change anything else.
	if err := store.ShredVentingSession(ctx, v.ID, first.Add(time.Hour)); err != nil {
		t.Fatalf("second shred err: %v", err)
	}
	again, err := store.GetVentingSession(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetVentingSession err: %v", err)
	}
	if !again.ShreddedAt.Equal(first) {
		t.Fatalf("idempotency violated, shredded_at moved to %v", again.ShreddedAt)
	}

	if err := store.ShredVentingSession(ctx, "missing", first); err != ErrVentNotFound {
		t.Fatalf("expected ErrVentNotFound, got %v", err)
	}
}

func TestListGratitudeEntriesNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		e := &journal.GratitudeEntry{
			ID:            uuid.NewString(),
			UserID:        "u1",
			GratitudeText: "entry",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.CreateGratitudeEntry(ctx, e); err != nil {
			t.Fatalf("CreateGratitudeEntry err: %v", err)
		}
	}

	entries, err := store.ListGratitudeEntries(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("ListGratitudeEntries err: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("limit ignored, got %d entries", len(entries))
	}
	if !entries[0].CreatedAt.After(entries[1].CreatedAt) {
		t.Fatalf("entries not newest-first: %v then %v", entries[0].CreatedAt, entries[1].CreatedAt)
	}
}
