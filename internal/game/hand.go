package game

import (
	"strings"

	"github.com/lox/blackjacksim/internal/shoe"
)

// Hand is one betting unit: the dealt hand, or a hand produced by a split.
type Hand struct {
	Cards []shoe.Card
	Bet   int

	// Doubled marks a hand whose bet was doubled for exactly one more card.
	Doubled bool
	// SplitHand marks a hand produced by a split; such a hand can never be
	// a natural blackjack.
	SplitHand bool
	// FromAceSplit marks a hand produced by splitting aces. It receives one
	// card and is finalized with no further hits, doubles or splits.
	FromAceSplit bool
}

// Add appends a card to the hand.
func (h *Hand) Add(c shoe.Card) {
	h.Cards = append(h.Cards, c)
}

// Value returns the best blackjack total and whether the hand is soft,
// i.e. an ace is counted as 11 without busting.
func (h *Hand) Value() (int, bool) {
	total, aces := 0, 0
	for _, c := range h.Cards {
		if c.Ace {
			aces++
			total += 11
		} else {
			total += c.Value
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// IsBusted returns true when the total exceeds 21.
func (h *Hand) IsBusted() bool {
	total, _ := h.Value()
	return total > 21
}

// IsBlackjack returns true for a natural: a two-card 21 on a hand that was
// not produced by a split.
func (h *Hand) IsBlackjack() bool {
	if h.SplitHand || len(h.Cards) != 2 {
		return false
	}
	total, _ := h.Value()
	return total == 21
}

// IsPair returns true for a two-card hand of equal counting value. Any two
// ten-values pair with each other.
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Value == h.Cards[1].Value
}

// String renders the hand's ranks, e.g. "A 7".
func (h *Hand) String() string {
	ranks := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		ranks[i] = c.String()
	}
	return strings.Join(ranks, " ")
}
