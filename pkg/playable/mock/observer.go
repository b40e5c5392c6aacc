package mock

import (
	"highlow/pkg/deck"
	"highlow/pkg/playable"

	"github.com/stretchr/testify/mock"
)

// Observer is a mock implementation of playable.Observer
type Observer struct {
	mock.Mock
}

// New returns a new mock observer
func New() *Observer {
	return &Observer{}
}

func (o *Observer) GameDidStart(game playable.CardGame) {
	o.Called(game)
}

func (o *Observer) PlayersDrew(card1, card2 deck.Card) {
	o.Called(card1, card2)
}

var _ playable.Observer = (*Observer)(nil)
