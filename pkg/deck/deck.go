package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"highlow/internal/rng"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a standard playing deck
// The cards are fixed at construction. Drawing does not remove a card from the deck, so the same
// card may be drawn more than once.
type Deck struct {
	cards []Card
	rng   rng.Generator
}

// New returns a new deck of cards that draws using crypto/rand
func New() *Deck {
	return NewWithGenerator(rng.Crypto{})
}

// NewWithGenerator returns a new deck that draws using the supplied random number generator
func NewWithGenerator(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{rng: gen}
	d.buildDeck()
	return d
}

// buildDeck lays out the cards rank by rank, each rank in suit declaration order
func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, rank := range Ranks() {
		for _, suit := range Suits() {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.cards = cards
}

// DrawCard returns a card chosen uniformly at random
// The card is not removed from the deck.
func (d *Deck) DrawCard() Card {
	return d.cards[d.rng.Intn(len(d.cards))]
}

// Cards returns a copy of the cards in deck order
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)

	return cards
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
