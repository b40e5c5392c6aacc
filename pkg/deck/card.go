package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Rank is the face value of a card, Ace (1) through King (13)
type Rank int

// rank constants
const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankWords = [...]string{
	Ace:   "ace",
	Jack:  "jack",
	Queen: "queen",
	King:  "king",
}

// Ranks returns every rank in ascending order
func Ranks() []Rank {
	ranks := make([]Rank, 0, King)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}

	return ranks
}

// Valid returns true if the rank is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if r.Valid() && rankWords[r] != "" {
		return rankWords[r]
	}

	return strconv.Itoa(int(r))
}

// Suit represents a card suit
type Suit int

// suit constants, in declaration order
const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

var suitNames = [...]string{
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Spades:   "spades",
	Clubs:    "clubs",
}

var suitLetters = [...]string{
	Hearts:   "h",
	Diamonds: "d",
	Spades:   "s",
	Clubs:    "c",
}

// suitPriority breaks ties between cards of the same rank
var suitPriority = [...]int{
	Clubs:    0,
	Diamonds: 1,
	Hearts:   2,
	Spades:   3,
}

// Suits returns every suit in declaration order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs}
}

// Valid returns true if the suit is one of the four standard suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Clubs
}

// Priority returns the tie-break priority of the suit (clubs lowest, spades highest)
func (s Suit) Priority() int {
	s.mustBeValid()
	return suitPriority[s]
}

func (s Suit) mustBeValid() {
	if !s.Valid() {
		panic(fmt.Sprintf("unknown suit: %d", int(s)))
	}
}

func (s Suit) String() string {
	s.mustBeValid()
	return suitNames[s]
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// String returns the card as "<rank> of <suit>", i.e., "queen of clubs"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Rank == card.Rank && c.Suit == card.Suit
}

// Less returns true if c ranks below card
func (c Card) Less(card Card) bool {
	return Compare(c, card) == Less
}

// Ordering is the result of comparing two cards
type Ordering int

// Ordering constants
const (
	Less Ordering = iota - 1
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}

	panic(fmt.Sprintf("unknown ordering: %d", int(o)))
}

// Compare orders two cards by rank. If the ranks match, the suit priority decides.
func Compare(a, b Card) Ordering {
	if a.Rank != b.Rank {
		return compareInts(int(a.Rank), int(b.Rank))
	}

	if a.Suit == b.Suit {
		return Equal
	}

	return compareInts(a.Suit.Priority(), b.Suit.Priority())
}

func compareInts(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}

	return Equal
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-3])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 1 and <= 13 and suit in [cdhs]
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: Rank(rank), Suit: suit}, nil
}

// MustCardFromString is like CardFromString but panics on a bad card
// This should only be used by tests and fixtures
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardToString converts a card (queen of clubs) to a string (12c)
func CardToString(card Card) string {
	card.Suit.mustBeValid()
	return fmt.Sprintf("%d%s", int(card.Rank), suitLetters[card.Suit])
}

// CardsFromString returns a slice of cards from a string in the format of 1c,2h,13s,...
func CardsFromString(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make([]Card, len(parts))
	for i, part := range parts {
		card, err := CardFromString(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString will convert a slice of cards to a string in the format of 1c,2h,13s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
