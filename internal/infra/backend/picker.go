package backend

import (
	"math/rand"
	"sync"
	"time"
)

// FixturePicker selects which of n fixtures an operation returns. The default
// is seeded randomness; tests swap in a round-robin picker to pin results.
type FixturePicker interface {
	// Pick returns an index in [0, n). n is always >= 1.
	Pick(n int) int
}

type seededPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededPicker returns a picker over a seeded source; seed 0 falls back to
// the current time.
func NewSeededPicker(seed int64) FixturePicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &seededPicker{rng: rand.New(rand.NewSource(seed))}
}

func (p *seededPicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.rng.Intn(n)
}

// RoundRobinPicker cycles through fixtures deterministically.
type RoundRobinPicker struct {
	mu   sync.Mutex
	next int
}

// Pick returns successive indexes modulo n.
func (p *RoundRobinPicker) Pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.next % n
	p.next++

	return idx
}
