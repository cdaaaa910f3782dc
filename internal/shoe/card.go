package shoe

import "strconv"

// Card is a blackjack card. Suits don't matter for blackjack, so only the
// counting value is kept: 2-9 for spot cards, 10 for ten/jack/queen/king,
// and 1 with the Ace flag set for aces. Aces score as 1 or 11 depending on
// the rest of the hand.
type Card struct {
	Value int
	Ace   bool
}

// NewCard creates a spot or ten-value card.
func NewCard(value int) Card {
	return Card{Value: value}
}

// NewAce creates an ace.
func NewAce() Card {
	return Card{Value: 1, Ace: true}
}

// IsTen returns true for any card that counts as ten.
func (c Card) IsTen() bool {
	return c.Value == 10
}

// String returns the card's rank ("A", "2".."9", "T").
func (c Card) String() string {
	switch {
	case c.Ace:
		return "A"
	case c.Value == 10:
		return "T"
	default:
		return strconv.Itoa(c.Value)
	}
}
