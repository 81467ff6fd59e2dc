package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mindhavenapp/mindhaven/backend/internal/model/bot"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/chat"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/journal"
)

// MemoryStore keeps everything in process memory.
type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]chat.Conversation
	messages      map[string][]chat.Message
	moods         []journal.MoodEntry
	gratitude     []journal.GratitudeEntry
	distortions   []journal.DistortionRecord
	vents         map[string]journal.VentingSession
	sleep         map[string]journal.SleepSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string]chat.Conversation),
		messages:      make(map[string][]chat.Message),
		vents:         make(map[string]journal.VentingSession),
		sleep:         make(map[string]journal.SleepSession),
	}
}

func (s *MemoryStore) CreateConversation(_ context.Context, conv *chat.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conv.ID] = *conv
	s.messages[conv.ID] = make([]chat.Message, 0, 16)
	return nil
}

func (s *MemoryStore) GetConversation(_ context.Context, id string) (*chat.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return &conv, nil
}

func (s *MemoryStore) FindConversation(_ context.Context, userID string, botType bot.Type) (*chat.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *chat.Conversation
	for id := range s.conversations {
		conv := s.conversations[id]
		if conv.UserID != userID || conv.BotType != botType {
			continue
		}
		if found == nil || conv.CreatedAt.After(found.CreatedAt) {
			c := conv
			found = &c
		}
	}
	if found == nil {
		return nil, ErrConversationNotFound
	}
	return found, nil
}

func (s *MemoryStore) UpdateConversationTitle(_ context.Context, id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.conversations[id]
	if !ok {
		return ErrConversationNotFound
	}
	conv.Title = title
	conv.UpdatedAt = time.Now().UTC()
	s.conversations[id] = conv
	return nil
}

func (s *MemoryStore) AppendMessage(_ context.Context, msg *chat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[msg.ConversationID]
	if !ok {
		return ErrConversationNotFound
	}
	s.messages[msg.ConversationID] = append(s.messages[msg.ConversationID], *msg)
	conv.UpdatedAt = msg.CreatedAt
	s.conversations[msg.ConversationID] = conv
	return nil
}

func (s *MemoryStore) ListMessages(_ context.Context, conversationID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs, ok := s.messages[conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}
	copied := make([]chat.Message, len(msgs))
	copy(copied, msgs)
	return copied, nil
}

func (s *MemoryStore) CreateMoodEntry(_ context.Context, entry *journal.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moods = append(s.moods, *entry)
	return nil
}

func (s *MemoryStore) CreateGratitudeEntry(_ context.Context, entry *journal.GratitudeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gratitude = append(s.gratitude, *entry)
	return nil
}

func (s *MemoryStore) ListGratitudeEntries(_ context.Context, userID string, limit int) ([]journal.GratitudeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []journal.GratitudeEntry
	for _, e := range s.gratitude {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) CreateDistortionRecord(_ context.Context, rec *journal.DistortionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.distortions = append(s.distortions, *rec)
	return nil
}

func (s *MemoryStore) CreateVentingSession(_ context.Context, session *journal.VentingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vents[session.ID] = *session
	return nil
}

func (s *MemoryStore) GetVentingSession(_ context.Context, id string) (*journal.VentingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vents[id]
	if !ok {
		return nil, ErrVentNotFound
	}
	return &v, nil
}

func (s *MemoryStore) ShredVentingSession(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vents[id]
	if !ok {
		return ErrVentNotFound
	}
	if v.IsShredded {
		return nil
	}
	v.IsShredded = true
	v.Content = journal.Tombstone
	v.ShreddedAt = &at
	s.vents[id] = v
	return nil
}

func (s *MemoryStore) CreateSleepSession(_ context.Context, session *journal.SleepSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sleep[session.ID] = *session
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
