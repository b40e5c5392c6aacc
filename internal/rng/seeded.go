package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Seeded is a reproducible generator backed by math/rand
type Seeded struct {
	seed int64
	mu   sync.Mutex
	rng  *rand.Rand
}

// NewSeeded returns a generator for the seed
// If seed is 0, the current time is used.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Seed returns the seed used by the generator
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rng.Intn(n)
}
