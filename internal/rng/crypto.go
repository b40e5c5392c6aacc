package rng

import (
	"crypto/rand"
	"math/big"
)

var (
	_ Generator = Crypto{}
	_ Generator = (*Seeded)(nil)
	_ Generator = (*Sequence)(nil)
)

// Crypto draws from crypto/rand. It is the default source for a deck.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
// A failure in the system's random source is unrecoverable and will panic.
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
