package flow

import (
	"testing"
	"time"
)

func TestSubmitWithoutDelayGoesStraightToResult(t *testing.T) {
	m := NewMachine(0)
	got, err := m.Submit("hello", func(s string) string { return "echo:" + s })
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if got != "echo:hello" {
		t.Fatalf("unexpected result %q", got)
	}
	if st := m.Snapshot(); st.Step != "result" || st.Result != "echo:hello" {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestDelayDoesNotAlterResult(t *testing.T) {
	m := NewMachine(20 * time.Millisecond)
	got, err := m.Submit("x", func(string) string { return "computed" })
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if got != "computed" {
		t.Fatalf("result should be computed at submission, got %q", got)
	}

	if st := m.Snapshot(); st.Step != "processing" || st.Result != "" {
		t.Fatalf("result leaked before delay elapsed: %+v", st)
	}

	deadline := time.Now().Add(time.Second)
	for {
		st := m.Snapshot()
		if st.Step == "result" {
			if st.Result != "computed" {
				t.Fatalf("delay altered result: %q", st.Result)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("machine never reached result step")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSubmitWhileProcessingRejected(t *testing.T) {
	m := NewMachine(time.Minute)
	if _, err := m.Submit("a", func(s string) string { return s }); err != nil {
		t.Fatalf("first Submit err: %v", err)
	}
	if _, err := m.Submit("b", func(s string) string { return s }); err != ErrNotAcceptingInput {
		t.Fatalf("expected ErrNotAcceptingInput, got %v", err)
	}
}

func TestResetCancelsTimer(t *testing.T) {
	m := NewMachine(10 * time.Millisecond)
	if _, err := m.Submit("a", func(s string) string { return s }); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	m.Reset()

	if st := m.Snapshot(); st.Step != "input" || st.Result != "" {
		t.Fatalf("reset did not clear state: %+v", st)
	}

	// The cancelled timer must not flip a fresh turn to result early.
	time.Sleep(30 * time.Millisecond)
	if st := m.Snapshot(); st.Step != "input" {
		t.Fatalf("stale timer fired after reset: %+v", st)
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()
	a := r.GetOrCreate("s1", 0)
	if b := r.GetOrCreate("s1", time.Hour); b != a {
		t.Fatal("GetOrCreate returned a different machine for same id")
	}
	r.Remove("s1")
	if _, ok := r.Get("s1"); ok {
		t.Fatal("machine still present after Remove")
	}
}
