// Package emotion tracks the expression scores produced by the external
// vision collaborator and exposes the strongest label as the current
// context tag for the face-aware bot.
package emotion

import "sync/atomic"

// Score is one labelled expression score within a frame.
type Score struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Frame is one sampled score map. Order matters: an exact score tie goes
// to the label encountered first, which is why frames are ordered pairs
// rather than a map.
type Frame []Score

// ArgMax returns the strongest label, or "" for an empty frame.
func (f Frame) ArgMax() string {
	label := ""
	best := 0.0
	for _, s := range f {
		if label == "" || s.Value > best {
			label = s.Label
			best = s.Value
		}
	}
	return label
}

// Sampler keeps the latest arg-max label. The collaborator is the single
// writer (one frame roughly every 300ms); message submission reads a
// snapshot, so an atomic value is all the synchronization needed.
type Sampler struct {
	current atomic.Value // string
}

// NewSampler returns a sampler with no label yet.
func NewSampler() *Sampler {
	s := &Sampler{}
	s.current.Store("")
	return s
}

// Observe records a frame. Empty frames leave the previous label in place.
func (s *Sampler) Observe(f Frame) {
	if label := f.ArgMax(); label != "" {
		s.current.Store(label)
	}
}

// Current returns the latest label, or "" before the first frame.
func (s *Sampler) Current() string {
	return s.current.Load().(string)
}
