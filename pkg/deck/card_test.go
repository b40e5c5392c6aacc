package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 1, int(Ace))
	assert.Equal(t, 10, int(Ten))
	assert.Equal(t, 11, int(Jack))
	assert.Equal(t, 12, int(Queen))
	assert.Equal(t, 13, int(King))
}

func TestRanks(t *testing.T) {
	a := assert.New(t)

	ranks := Ranks()
	a.Len(ranks, 13)
	for i, r := range ranks {
		a.Equal(Rank(i+1), r)
		a.True(r.Valid())
	}

	a.False(Rank(0).Valid())
	a.False(Rank(14).Valid())
}

func TestSuits(t *testing.T) {
	a := assert.New(t)
	a.Equal([]Suit{Hearts, Diamonds, Spades, Clubs}, Suits())
	a.Equal("hearts", Hearts.String())
	a.Equal("diamonds", Diamonds.String())
	a.Equal("spades", Spades.String())
	a.Equal("clubs", Clubs.String())
	a.PanicsWithValue("unknown suit: 4", func() {
		_ = Suit(4).String()
	})
}

func TestSuit_Priority(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, Clubs.Priority())
	a.Equal(1, Diamonds.Priority())
	a.Equal(2, Hearts.Priority())
	a.Equal(3, Spades.Priority())

	a.PanicsWithValue("unknown suit: 4", func() {
		_ = Suit(4).Priority()
	})
	a.PanicsWithValue("unknown suit: -1", func() {
		_ = Suit(-1).Priority()
	})
}

func TestCardToString_unknownSuit(t *testing.T) {
	a := assert.New(t)
	a.Equal("12c", CardToString(Card{Rank: Queen, Suit: Clubs}))
	a.PanicsWithValue("unknown suit: 7", func() {
		_ = CardToString(Card{Rank: Queen, Suit: Suit(7)})
	})
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("ace of spades", Card{Rank: Ace, Suit: Spades}.String())
	a.Equal("10 of hearts", Card{Rank: Ten, Suit: Hearts}.String())
	a.Equal("queen of clubs", Card{Rank: Queen, Suit: Clubs}.String())
	a.Equal("jack of diamonds", Card{Rank: Jack, Suit: Diamonds}.String())
	a.Equal("king of hearts", Card{Rank: King, Suit: Hearts}.String())
	a.Equal("2 of clubs", Card{Rank: Two, Suit: Clubs}.String())
}

func TestCompare_rankDecides(t *testing.T) {
	a := assert.New(t)

	for _, r1 := range Ranks() {
		for _, r2 := range Ranks() {
			if r1 >= r2 {
				continue
			}

			for _, s1 := range Suits() {
				for _, s2 := range Suits() {
					low := Card{Rank: r1, Suit: s1}
					high := Card{Rank: r2, Suit: s2}
					a.Equal(Less, Compare(low, high), "%s vs %s", low, high)
					a.Equal(Greater, Compare(high, low), "%s vs %s", high, low)
				}
			}
		}
	}
}

// handWrittenLess is the per-suit branching the priority table replaces
func handWrittenLess(lhs, rhs Suit) bool {
	switch lhs {
	case Clubs:
		return rhs != Clubs
	case Diamonds:
		return !(rhs == Clubs || rhs == Diamonds)
	case Hearts:
		return rhs == Spades
	case Spades:
		return false
	}

	return false
}

func TestCompare_suitTieBreak(t *testing.T) {
	a := assert.New(t)

	count := 0
	for _, s1 := range Suits() {
		for _, s2 := range Suits() {
			count++
			c1 := Card{Rank: Seven, Suit: s1}
			c2 := Card{Rank: Seven, Suit: s2}

			var expected Ordering
			switch {
			case s1 == s2:
				expected = Equal
			case handWrittenLess(s1, s2):
				expected = Less
			default:
				expected = Greater
			}

			a.Equal(expected, Compare(c1, c2), "%s vs %s", c1, c2)
			a.Equal(handWrittenLess(s1, s2), c1.Less(c2), "%s < %s", c1, c2)
		}
	}

	a.Equal(16, count)
}

func TestCompare_examples(t *testing.T) {
	a := assert.New(t)
	a.Equal(Less, Compare(Card{Rank: Five, Suit: Clubs}, Card{Rank: Five, Suit: Spades}))
	a.Equal(Greater, Compare(Card{Rank: King, Suit: Hearts}, Card{Rank: King, Suit: Diamonds}))
	a.Equal(Equal, Compare(Card{Rank: Ace, Suit: Spades}, Card{Rank: Ace, Suit: Spades}))
	a.Equal(Less, Compare(Card{Rank: Ace, Suit: Spades}, Card{Rank: Two, Suit: Clubs}))
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(Card{Rank: Four, Suit: Hearts}.Equal(Card{Rank: Four, Suit: Hearts}))
	a.False(Card{Rank: Four, Suit: Hearts}.Equal(Card{Rank: Four, Suit: Spades}))
	a.False(Card{Rank: Four, Suit: Hearts}.Equal(Card{Rank: Five, Suit: Hearts}))
}

func TestOrdering_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("less", Less.String())
	a.Equal("equal", Equal.String())
	a.Equal("greater", Greater.String())
	a.Panics(func() {
		_ = Ordering(2).String()
	})
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card, err := CardFromString("12c")
	a.NoError(err)
	a.Equal(Card{Rank: Queen, Suit: Clubs}, card)

	card, err = CardFromString("1S")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	for _, bad := range []string{"", "0h", "14h", "10x", "h10", "10h "} {
		_, err := CardFromString(bad)
		a.ErrorIs(err, ErrInvalidCard, bad)
	}

	a.Panics(func() {
		MustCardFromString("bad")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards, err := CardsFromString("1h,10d, 13s,2c")
	a.NoError(err)
	a.Equal([]Card{
		{Rank: Ace, Suit: Hearts},
		{Rank: Ten, Suit: Diamonds},
		{Rank: King, Suit: Spades},
		{Rank: Two, Suit: Clubs},
	}, cards)
	a.Equal("1h,10d,13s,2c", CardsToString(cards))

	cards, err = CardsFromString("")
	a.NoError(err)
	a.Empty(cards)

	cards, err = CardsFromString("1h,99z")
	a.Nil(cards)
	a.EqualError(err, `invalid card: "99z"`)
}
