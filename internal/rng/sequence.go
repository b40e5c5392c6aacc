package rng

import (
	"fmt"
	"sync"
)

// Sequence replays a fixed list of values, wrapping around at the end
// Useful for deterministic games and tests.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence returns a generator that replays values in order
func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("sequence requires at least one value")
	}

	return &Sequence{values: values}
}

// Intn returns the next value in the sequence
// It panics if the value is not in the range 0 <= x < n
func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)

	if v < 0 || v >= n {
		panic(fmt.Sprintf("sequence value %d out of range [0, %d)", v, n))
	}

	return v
}
