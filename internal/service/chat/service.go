// Package chat orchestrates conversational turns: classification,
// response selection, and best-effort recording of both sides of the
// exchange.
package chat

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindhavenapp/mindhaven/backend/internal/analysis/rules"
	"github.com/mindhavenapp/mindhaven/backend/internal/catalog"
	"github.com/mindhavenapp/mindhaven/backend/internal/emotion"
	"github.com/mindhavenapp/mindhaven/backend/internal/flow"
	"github.com/mindhavenapp/mindhaven/backend/internal/metrics"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/bot"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/chat"
	"github.com/mindhavenapp/mindhaven/backend/internal/model/journal"
	"github.com/mindhavenapp/mindhaven/backend/internal/storage"
)

var (
	ErrUnknownBot     = errors.New("unknown bot type")
	ErrUnsupportedBot = errors.New("bot does not take chat turns")
	ErrEmptyMessage   = errors.New("message content is empty")
)

// MicroTherapyDelay is the simulated thinking time of the quick-support
// bot. The response itself is computed before the delay starts.
const MicroTherapyDelay = 3 * time.Second

const titleLimit = 50

// Session is the started-conversation view returned to clients.
type Session struct {
	Conversation chat.Conversation `json:"conversation"`
	Greeting     string            `json:"greeting,omitempty"`
}

// Turn is one completed exchange.
type Turn struct {
	UserMessage      chat.Message `json:"userMessage"`
	AssistantMessage chat.Message `json:"assistantMessage"`
}

// Service implements the session/turn recorder over a storage.Store.
type Service struct {
	store   storage.Store
	sampler *emotion.Sampler
	flows   *flow.Registry
	logger  *zap.Logger
}

func NewService(store storage.Store, sampler *emotion.Sampler, flows *flow.Registry, logger *zap.Logger) *Service {
	return &Service{store: store, sampler: sampler, flows: flows, logger: logger}
}

// StartSession provisions the conversation for one bot session. Most
// bots get a fresh conversation every time; the sleep guardian reuses
// the user's existing one so each user keeps a single night-time thread.
func (s *Service) StartSession(ctx context.Context, userID string, botType bot.Type, title string) (*Session, error) {
	if !bot.Known(botType) {
		return nil, ErrUnknownBot
	}

	if bot.ReusesConversation(botType) {
		return s.startSleepSession(ctx, userID, title)
	}

	conv, err := s.createConversation(ctx, userID, botType, title)
	if err != nil {
		return nil, err
	}

	session := &Session{Conversation: *conv}
	if botType == bot.FaceDetection {
		session.Greeting = catalog.FaceGreeting
	}
	return session, nil
}

func (s *Service) startSleepSession(ctx context.Context, userID, title string) (*Session, error) {
	conv, err := s.store.FindConversation(ctx, userID, bot.SleepGuardian)
	if errors.Is(err, storage.ErrConversationNotFound) {
		if title == "" {
			title = "Sleep Guardian Session"
		}
		conv, err = s.createConversation(ctx, userID, bot.SleepGuardian, title)
	}
	if err != nil {
		return nil, err
	}

	// The sleep session row marks tonight's start; its failure must not
	// keep the user from the conversation.
	sleep := &journal.SleepSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartTime: time.Now().UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateSleepSession(ctx, sleep); err != nil {
		metrics.StoreWriteFailures.Inc()
		s.logger.Error("failed to record sleep session", zap.Error(err), zap.String("user", userID))
	}

	return &Session{Conversation: *conv, Greeting: catalog.SleepGreeting}, nil
}

func (s *Service) createConversation(ctx context.Context, userID string, botType bot.Type, title string) (*chat.Conversation, error) {
	now := time.Now().UTC()
	conv := &chat.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID,
		BotType:   botType,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateConversation(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// GetConversation loads one conversation.
func (s *Service) GetConversation(ctx context.Context, id string) (*chat.Conversation, error) {
	return s.store.GetConversation(ctx, id)
}

// Transcript returns the conversation's messages in submission order.
func (s *Service) Transcript(ctx context.Context, conversationID string) ([]chat.Message, error) {
	return s.store.ListMessages(ctx, conversationID)
}

// Respond runs one turn: classify, select, record user and assistant
// messages in that order, and return the exchange. Recording is
// best-effort; a failed write is logged and the response still surfaces.
func (s *Service) Respond(ctx context.Context, conversationID, content string) (*Turn, error) {
	if len(content) == 0 {
		return nil, ErrEmptyMessage
	}

	conv, err := s.store.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	var (
		response      string
		userMeta      map[string]string
		assistantMeta map[string]string
	)

	switch conv.BotType {
	case bot.MicroTherapy:
		response = s.microTherapyResponse(ctx, conv, content)
	case bot.SleepGuardian:
		response = catalog.SleepGuardian.SelectFirst(rules.SleepTable.Classify(content))
	case bot.FaceDetection:
		label := s.sampler.Current()
		if label != "" {
			userMeta = map[string]string{"detected_emotion": label}
			assistantMeta = map[string]string{"analyzed_emotion": label}
			response = catalog.FaceResponses.Select(rules.Category(label))
		} else {
			response = catalog.FaceResponses.Select("neutral")
		}
	default:
		return nil, ErrUnsupportedBot
	}

	metrics.Classifications.WithLabelValues(string(conv.BotType)).Inc()

	userMsg := s.record(ctx, conv.ID, chat.RoleUser, content, userMeta)
	assistantMsg := s.record(ctx, conv.ID, chat.RoleAssistant, response, assistantMeta)

	return &Turn{UserMessage: userMsg, AssistantMessage: assistantMsg}, nil
}

func (s *Service) microTherapyResponse(ctx context.Context, conv *chat.Conversation, content string) string {
	if conv.Title == "" {
		title := content
		if runes := []rune(title); len(runes) > titleLimit {
			title = string(runes[:titleLimit])
		}
		if err := s.store.UpdateConversationTitle(ctx, conv.ID, title); err != nil {
			metrics.StoreWriteFailures.Inc()
			s.logger.Error("failed to title conversation", zap.Error(err), zap.String("conversation", conv.ID))
		}
	}

	// The flow machine holds the presentation delay; the classification
	// outcome is fixed before the timer starts.
	machine := s.flows.GetOrCreate(conv.ID, MicroTherapyDelay)
	machine.Reset()
	response, err := machine.Submit(content, func(text string) string {
		return catalog.MicroTherapy.SelectFirst(rules.MicroTherapyTable.Classify(text))
	})
	if err != nil {
		// Reset above makes this unreachable; classify directly if not.
		response = catalog.MicroTherapy.SelectFirst(rules.MicroTherapyTable.Classify(content))
	}
	return response
}

// record appends one message, swallowing storage faults.
func (s *Service) record(ctx context.Context, conversationID string, role chat.Role, content string, metadata map[string]string) chat.Message {
	msg := chat.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Metadata:       metadata,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.AppendMessage(ctx, &msg); err != nil {
		metrics.StoreWriteFailures.Inc()
		s.logger.Error("failed to persist message",
			zap.Error(err),
			zap.String("conversation", conversationID),
			zap.String("role", string(role)))
	}
	return msg
}
