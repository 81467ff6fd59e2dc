package emotion

import "testing"

func TestArgMax(t *testing.T) {
	f := Frame{
		{Label: "neutral", Value: 0.2},
		{Label: "happy", Value: 0.7},
		{Label: "sad", Value: 0.1},
	}
	if got := f.ArgMax(); got != "happy" {
		t.Fatalf("expected happy, got %s", got)
	}
}

func TestArgMaxTieGoesToFirstLabel(t *testing.T) {
	f := Frame{
		{Label: "sad", Value: 0.5},
		{Label: "angry", Value: 0.5},
	}
	if got := f.ArgMax(); got != "sad" {
		t.Fatalf("tie should go to first-encountered label, got %s", got)
	}
}

func TestSamplerSnapshot(t *testing.T) {
	s := NewSampler()
	if got := s.Current(); got != "" {
		t.Fatalf("expected no label before first frame, got %q", got)
	}

	s.Observe(Frame{{Label: "fearful", Value: 0.9}})
	if got := s.Current(); got != "fearful" {
		t.Fatalf("expected fearful, got %q", got)
	}

	// An empty frame must not clear the snapshot.
	s.Observe(Frame{})
	if got := s.Current(); got != "fearful" {
		t.Fatalf("empty frame cleared label, got %q", got)
	}

	s.Observe(Frame{{Label: "happy", Value: 0.8}})
	if got := s.Current(); got != "happy" {
		t.Fatalf("expected happy after new frame, got %q", got)
	}
}
