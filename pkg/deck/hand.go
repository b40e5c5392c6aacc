package deck

// Hand represents a collection of cards
// Sorting a hand orders it from lowest to highest card.
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return Compare(h[i], h[j]) == Less
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Highest returns the highest card in the hand
// The second return value is false if the hand is empty.
func (h Hand) Highest() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}

	best := h[0]
	for _, c := range h[1:] {
		if Compare(c, best) == Greater {
			best = c
		}
	}

	return best, true
}

// Distinct returns the number of unique cards in the hand
func (h Hand) Distinct() int {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		seen[c] = true
	}

	return len(seen)
}

func (h Hand) String() string {
	return CardsToString(h)
}
