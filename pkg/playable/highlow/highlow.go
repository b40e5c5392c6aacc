package highlow

import (
	"errors"
	"github.com/sirupsen/logrus"
	"highlow/pkg/deck"
	"highlow/pkg/playable"
)

// ErrGameOver is returned when Play() is called after the last round
var ErrGameOver = errors.New("game is over")

// Game is a game of High Low
// Each round, both players draw a card and the higher card wins. Cards are never removed from
// the deck, so both players may draw the same card and tie.
type Game struct {
	options  Options
	deck     *deck.Deck
	observer playable.Observer
	logger   logrus.FieldLogger

	rounds []*Round
	drawn  deck.Hand
}

// Tally counts the results of all rounds played
type Tally struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
	Ties    int `json:"ties"`
}

// NewGame returns a new game
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if options.Rounds <= 0 {
		return nil, errors.New("rounds must be > 0")
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	observer := options.Observer
	if observer == nil {
		observer = playable.NopObserver{}
	}

	return &Game{
		options:  options,
		deck:     deck.NewWithGenerator(options.Generator),
		observer: observer,
		logger:   logger,
		rounds:   make([]*Round, 0, options.Rounds),
	}, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "High Low"
}

// Key returns a unique key
func (g *Game) Key() string {
	return "high-low"
}

// Deck returns the deck
func (g *Game) Deck() *deck.Deck {
	return g.deck
}

// Play plays the next round
func (g *Game) Play() (*Round, error) {
	if g.IsGameOver() {
		return nil, ErrGameOver
	}

	g.observer.GameDidStart(g)

	card1 := g.deck.DrawCard()
	card2 := g.deck.DrawCard()
	g.drawn.AddCard(card1)
	g.drawn.AddCard(card2)

	g.observer.PlayersDrew(card1, card2)

	r := newRound(len(g.rounds)+1, card1, card2)
	g.rounds = append(g.rounds, r)

	g.logger.WithFields(logrus.Fields{
		"round":   r.Number,
		"card1":   deck.CardToString(card1),
		"card2":   deck.CardToString(card2),
		"outcome": r.Outcome.String(),
	}).Debug(r.Description())

	return r, nil
}

// PlayAll plays every remaining round
func (g *Game) PlayAll() ([]*Round, error) {
	played := make([]*Round, 0, g.options.Rounds-len(g.rounds))
	for !g.IsGameOver() {
		r, err := g.Play()
		if err != nil {
			return played, err
		}

		played = append(played, r)
	}

	return played, nil
}

// IsGameOver returns true if all rounds have been played
func (g *Game) IsGameOver() bool {
	return len(g.rounds) >= g.options.Rounds
}

// Rounds returns the rounds played so far
func (g *Game) Rounds() []*Round {
	rounds := make([]*Round, len(g.rounds))
	copy(rounds, g.rounds)

	return rounds
}

// Drawn returns every card drawn, in draw order
func (g *Game) Drawn() deck.Hand {
	drawn := make(deck.Hand, len(g.drawn))
	copy(drawn, g.drawn)

	return drawn
}

// Tally returns the results of all rounds played
func (g *Game) Tally() Tally {
	var t Tally
	for _, r := range g.rounds {
		switch r.Outcome {
		case OutcomeTie:
			t.Ties++
		case OutcomePlayer1:
			t.Player1++
		case OutcomePlayer2:
			t.Player2++
		}
	}

	return t
}

var _ playable.CardGame = (*Game)(nil)
