package highlow

import (
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"highlow/pkg/deck"
)

// Outcome is the result of a round
type Outcome int

// Outcome constants
const (
	OutcomeTie Outcome = iota
	OutcomePlayer1
	OutcomePlayer2
)

// String returns the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeTie:
		return "tie"
	case OutcomePlayer1:
		return "player 1"
	case OutcomePlayer2:
		return "player 2"
	}

	panic(fmt.Sprintf("unknown outcome: %d", o))
}

// Round is a single draw of two cards
type Round struct {
	ID      string
	Number  int
	Card1   deck.Card
	Card2   deck.Card
	Outcome Outcome
}

// newRound decides the round. card1 wins unless it ranks below card2.
func newRound(number int, card1, card2 deck.Card) *Round {
	r := &Round{
		ID:     uuid.New().String(),
		Number: number,
		Card1:  card1,
		Card2:  card2,
	}

	switch deck.Compare(card1, card2) {
	case deck.Equal:
		r.Outcome = OutcomeTie
	case deck.Less:
		r.Outcome = OutcomePlayer2
	default:
		r.Outcome = OutcomePlayer1
	}

	return r
}

// WinningCard returns the card that won the round
// On a tie, both cards are the same and card 1 is returned.
func (r *Round) WinningCard() deck.Card {
	if r.Outcome == OutcomePlayer2 {
		return r.Card2
	}

	return r.Card1
}

// Description returns a human-readable result of the round
func (r *Round) Description() string {
	switch r.Outcome {
	case OutcomeTie:
		return fmt.Sprintf("Round ends in a tie with a %s", r.Card1)
	case OutcomePlayer2:
		return fmt.Sprintf("Player 2 wins with a %s", r.Card2)
	}

	return fmt.Sprintf("Player 1 wins with a %s", r.Card1)
}

// MarshalJSON provides custom JSON marshalling for round
func (r *Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(roundJSON{
		ID:      r.ID,
		Number:  r.Number,
		Card1:   deck.CardToString(r.Card1),
		Card2:   deck.CardToString(r.Card2),
		Outcome: r.Outcome.String(),
		Result:  r.Description(),
	})
}

type roundJSON struct {
	ID      string `json:"id"`
	Number  int    `json:"number"`
	Card1   string `json:"card1"`
	Card2   string `json:"card2"`
	Outcome string `json:"outcome"`
	Result  string `json:"result"`
}
