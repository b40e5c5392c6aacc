package highlow

import (
	"highlow/internal/rng"
	"highlow/pkg/playable"
)

// Options contains options for creating a new game of High Low
type Options struct {
	// Rounds is the number of rounds in a game
	Rounds int

	// Observer is notified of game events. Defaults to playable.NopObserver
	Observer playable.Observer

	// Generator is the random source for the deck. Defaults to rng.Crypto
	Generator rng.Generator
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Rounds:    5,
		Observer:  playable.NopObserver{},
		Generator: rng.Crypto{},
	}
}
