// Package vent implements the venting shredder: store a vent, then
// destroy its content on explicit request.
package vent

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindhavenapp/mindhaven/backend/internal/model/journal"
	"github.com/mindhavenapp/mindhaven/backend/internal/storage"
)

type Service struct {
	store  storage.Store
	logger *zap.Logger
}

func NewService(store storage.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Write stores a vent. Unlike message recording this write is not
// best-effort: the shred contract needs the row to exist.
func (s *Service) Write(ctx context.Context, userID, content string) (*journal.VentingSession, error) {
	session := journal.VentingSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateVentingSession(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Shred tombstones the vent's content and stamps the deletion time. The
// transition is one-way: shredding an already-shredded vent changes
// nothing and succeeds.
func (s *Service) Shred(ctx context.Context, id string) (*journal.VentingSession, error) {
	if err := s.store.ShredVentingSession(ctx, id, time.Now().UTC()); err != nil {
		return nil, err
	}
	session, err := s.store.GetVentingSession(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("vent shredded", zap.String("vent", id))
	return session, nil
}

// Get loads one vent.
func (s *Service) Get(ctx context.Context, id string) (*journal.VentingSession, error) {
	return s.store.GetVentingSession(ctx, id)
}
