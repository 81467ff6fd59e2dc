package vent

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/mindhavenapp/mindhaven/backend/internal/model/journal"
	"github.com/mindhavenapp/mindhaven/backend/internal/storage"
)

func TestWriteThenShred(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), zap.NewNop())
	ctx := context.Background()

	written, err := svc.Write(ctx, "u1", "I just need to let this out")
	if err != nil {
		t.Fatalf("Write err: %v", err)
	}
	if written.IsShredded {
		t.Fatal("fresh vent must not be shredded")
	}

	shredded, err := svc.Shred(ctx, written.ID)
	if err != nil {
		t.Fatalf("Shred err: %v", err)
	}
	if !shredded.IsShredded || shredded.Content != journal.Tombstone {
		t.Fatalf("shred did not tombstone: %+v", shredded)
	}
	if shredded.ShreddedAt == nil {
		t.Fatal("shredded_at not stamped")
	}

	again, err := svc.Shred(ctx, written.ID)
	if err != nil {
		t.Fatalf("second Shred err: %v", err)
	}
	if !again.ShreddedAt.Equal(*shredded.ShreddedAt) {
		t.Fatalf("second shred moved shredded_at: %v vs %v", again.ShreddedAt, shredded.ShreddedAt)
	}
}

func TestShredMissingVent(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), zap.NewNop())
	if _, err := svc.Shred(context.Background(), "missing"); err != storage.ErrVentNotFound {
		t.Fatalf("expected ErrVentNotFound, got %v", err)
	}
}
