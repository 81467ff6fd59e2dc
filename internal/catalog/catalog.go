// Package catalog holds the closed, author-written response sets and the
// selection policy that picks one variant per classified category.
package catalog

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mindhavenapp/mindhaven/backend/internal/analysis/rules"
)

// Policy fixes how a catalog chooses among multiple variants. It is a
// per-catalog setting, not a per-call one.
type Policy int

const (
	// DeterministicFirst always returns the first variant.
	DeterministicFirst Policy = iota
	// UniformRandom picks uniformly using the catalog's random source.
	UniformRandom
)

// Intner is the injectable random source. Tests substitute a fixed-seed
// implementation to make selection reproducible.
type Intner interface {
	Intn(n int) int
}

// lockedRand makes a rand.Rand safe for concurrent handlers.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}

// NewLockedRand returns a concurrency-safe Intner seeded with seed.
func NewLockedRand(seed int64) Intner {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

// Catalog maps categories to their response variants.
type Catalog struct {
	policy  Policy
	generic string
	entries map[rules.Category][]string
	src     Intner
}

// New builds a catalog. generic is returned for categories the catalog
// does not know, which the default-category invariant should make
// unreachable in practice.
func New(policy Policy, generic string, entries map[rules.Category][]string) *Catalog {
	return &Catalog{
		policy:  policy,
		generic: generic,
		entries: entries,
		src:     &lockedRand{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))},
	}
}

// WithSource replaces the random source and returns the catalog.
func (c *Catalog) WithSource(src Intner) *Catalog {
	c.src = src
	return c
}

// Select returns the response for one category. Single-variant entries
// are deterministic regardless of policy.
func (c *Catalog) Select(cat rules.Category) string {
	variants, ok := c.entries[cat]
	if !ok || len(variants) == 0 {
		return c.generic
	}
	if len(variants) == 1 || c.policy == DeterministicFirst {
		return variants[0]
	}
	return variants[c.src.Intn(len(variants))]
}

// SelectFirst resolves a multi-match classification: the response is
// keyed by the first category in the result's declared order.
func (c *Catalog) SelectFirst(cats []rules.Category) string {
	if len(cats) == 0 {
		return c.generic
	}
	return c.Select(cats[0])
}

// Generic exposes the fallback response.
func (c *Catalog) Generic() string {
	return c.generic
}
