package playable

import (
	"fmt"
	"github.com/google/uuid"
	"highlow/pkg/deck"
	"time"
)

// CardGame is a game played from a single deck
type CardGame interface {
	// Name returns the name of the game
	Name() string

	// Deck returns the deck the game draws from
	Deck() *deck.Deck
}

// Observer is notified synchronously as a game progresses
type Observer interface {
	// GameDidStart is called at the start of every round, before any card is drawn
	GameDidStart(game CardGame)

	// PlayersDrew is called once both players have drawn
	PlayersDrew(card1, card2 deck.Card)
}

// NopObserver ignores every event
type NopObserver struct{}

// GameDidStart does nothing
func (NopObserver) GameDidStart(CardGame) {}

// PlayersDrew does nothing
func (NopObserver) PlayersDrew(_, _ deck.Card) {}

// LogMessage is the format a game should send log messages in
// If PlayerIDs is empty, assume it's a general statement
type LogMessage struct {
	UUID      string      `json:"uuid"`
	PlayerIDs []int64     `json:"playerIds"`
	Cards     []deck.Card `json:"cards"`
	Message   string      `json:"message"`
	Time      time.Time   `json:"time"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID int64, format string, a ...interface{}) *LogMessage {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// CardsLogMessage returns a new LogMessage for cards drawn by the players
func CardsLogMessage(playerIDs []int64, cards []deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(0, format, a...)
	lm.PlayerIDs = playerIDs
	lm.Cards = cards

	return lm
}
