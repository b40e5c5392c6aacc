package playable

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"highlow/pkg/deck"
	"io"
)

const logChanSize = 256

// Tracker is an Observer that reports game events
// Each event is printed to out, logged, and sent to LogChan()
type Tracker struct {
	out     io.Writer
	logger  logrus.FieldLogger
	logChan chan []*LogMessage
}

// NewTracker returns a new tracker
func NewTracker(out io.Writer, logger logrus.FieldLogger) *Tracker {
	if out == nil {
		out = io.Discard
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Tracker{
		out:     out,
		logger:  logger,
		logChan: make(chan []*LogMessage, logChanSize),
	}
}

// GameDidStart reports the start of a game
func (t *Tracker) GameDidStart(game CardGame) {
	msg := fmt.Sprintf("Started a new game of %s", game.Name())
	_, _ = fmt.Fprintln(t.out, msg)

	t.logger.WithField("game", game.Name()).Debug("game started")
	t.send(SimpleLogMessage(0, msg))
}

// PlayersDrew reports the cards drawn by both players
func (t *Tracker) PlayersDrew(card1, card2 deck.Card) {
	msg := fmt.Sprintf("Player 1 drew a %s, player 2 drew a %s", card1, card2)
	_, _ = fmt.Fprintln(t.out, msg)

	t.logger.WithFields(logrus.Fields{
		"card1": deck.CardToString(card1),
		"card2": deck.CardToString(card2),
	}).Debug("players drew")
	t.send(CardsLogMessage([]int64{1, 2}, []deck.Card{card1, card2}, msg))
}

// LogChan returns a channel that receives a log message for every event
// Messages are dropped if the channel is full.
func (t *Tracker) LogChan() <-chan []*LogMessage {
	return t.logChan
}

func (t *Tracker) send(messages ...*LogMessage) {
	select {
	case t.logChan <- messages:
	default:
		t.logger.WithField("count", len(messages)).Warn("log channel is full, dropping messages")
	}
}
