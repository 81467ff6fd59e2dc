// Package flow models the turn lifecycle every interactive bot shares:
// input, a simulated thinking delay, result, reset. The delay is purely a
// presentation concern; the result is computed at submission time and
// merely withheld until the timer fires.
package flow

import (
	"errors"
	"sync"
	"time"
)

// Step enumerates the turn states.
type Step int

const (
	StepInput Step = iota
	StepProcessing
	StepResult
)

func (s Step) String() string {
	switch s {
	case StepInput:
		return "input"
	case StepProcessing:
		return "processing"
	case StepResult:
		return "result"
	}
	return "unknown"
}

var ErrNotAcceptingInput = errors.New("turn already in progress")

// Machine is one session's turn state. A single logical timer drives the
// processing step; Reset and Close stop it so it cannot fire into a
// torn-down session.
type Machine struct {
	mu       sync.Mutex
	step     Step
	input    string
	result   string
	deadline time.Time
	timer    *time.Timer
	gen      uint64
	delay    time.Duration
}

// NewMachine builds a machine idling in the input step.
func NewMachine(delay time.Duration) *Machine {
	return &Machine{delay: delay}
}

// Submit starts a turn: the outcome is computed immediately and surfaced
// once the processing delay elapses. compute runs synchronously under no
// lock contention guarantees of its own, so it must be pure.
func (m *Machine) Submit(input string, compute func(string) string) (string, error) {
	result := compute(input)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != StepInput {
		return "", ErrNotAcceptingInput
	}

	m.input = input
	m.result = result

	if m.delay <= 0 {
		m.step = StepResult
		return result, nil
	}

	m.step = StepProcessing
	m.deadline = time.Now().Add(m.delay)
	m.gen++
	gen := m.gen
	m.timer = time.AfterFunc(m.delay, func() { m.finish(gen) })
	return result, nil
}

func (m *Machine) finish(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// A reset may have raced the timer; stale generations are dropped.
	if gen != m.gen || m.step != StepProcessing {
		return
	}
	m.step = StepResult
}

// Status is a point-in-time snapshot for progress reporting.
type Status struct {
	Step      string  `json:"step"`
	Remaining float64 `json:"remainingSeconds"`
	Result    string  `json:"result,omitempty"`
}

// Snapshot reports the current step, the seconds left in processing, and
// the result once it is visible.
func (m *Machine) Snapshot() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := Status{Step: m.step.String()}
	if m.step == StepProcessing {
		if rem := time.Until(m.deadline).Seconds(); rem > 0 {
			st.Remaining = rem
		}
	}
	if m.step == StepResult {
		st.Result = m.result
	}
	return st
}

// Reset clears all transient per-turn fields and returns to the input
// step. Persisted messages are untouched.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
	m.step = StepInput
	m.input = ""
	m.result = ""
	m.deadline = time.Time{}
}

// Close stops the timer on teardown.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
}

func (m *Machine) stopTimerLocked() {
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// Registry tracks the machine of each active session.
type Registry struct {
	mu       sync.Mutex
	machines map[string]*Machine
}

func NewRegistry() *Registry {
	return &Registry{machines: make(map[string]*Machine)}
}

// GetOrCreate returns the session's machine, creating it with the given
// delay on first use.
func (r *Registry) GetOrCreate(id string, delay time.Duration) *Machine {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.machines[id]; ok {
		return m
	}
	m := NewMachine(delay)
	r.machines[id] = m
	return m
}

// Get looks up a session's machine.
func (r *Registry) Get(id string) (*Machine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.machines[id]
	return m, ok
}

// Remove tears down a session's machine.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	m, ok := r.machines[id]
	delete(r.machines, id)
	r.mu.Unlock()
	if ok {
		m.Close()
	}
}
