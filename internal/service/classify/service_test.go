package classify

import (
	"strings"
	"testing"
)

func TestClassifyTripleMSad(t *testing.T) {
	svc := NewService()
	got := svc.Classify("I've been feeling really down lately", "triple_m")
	if !strings.Contains(got, "Music can be a powerful mood lifter") {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestClassifySleepGuardianPriority(t *testing.T) {
	svc := NewService()
	// "scared" outranks "worry" in the quick table.
	got := svc.Classify("I'm scared and I worry a lot at night", "sleep_guardian")
	if !strings.Contains(got, "You're safe right now") {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestClassifyNoKeywordUsesBotDefault(t *testing.T) {
	svc := NewService()
	got := svc.Classify("blah blah nothing relevant", "micro_therapy")
	if !strings.Contains(got, "Whatever you're feeling right now is valid") {
		t.Fatalf("unexpected default response: %q", got)
	}
}

func TestClassifyGratitudeAlwaysFixed(t *testing.T) {
	svc := NewService()
	a := svc.Classify("I'm grateful for my dog", "gratitude")
	b := svc.Classify("anything at all", "gratitude")
	if a != b {
		t.Fatalf("gratitude response should be fixed: %q vs %q", a, b)
	}
}

func TestClassifyUnknownBotFallsBack(t *testing.T) {
	svc := NewService()
	if got := svc.Classify("hello", "unknown_bot"); got != GenericFallback {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}
