package shoe

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// cardsPerDeck is the size of one virtual deck: four of each rank 2-9,
// sixteen ten-values (10/J/Q/K) and four aces.
const cardsPerDeck = 52

// reshuffleThreshold is the penetration at which a manually shuffled shoe
// is reshuffled before the next round.
const reshuffleThreshold = 0.80

// ErrExhausted is returned by Draw when the shoe has no cards left. Correct
// reshuffle policy makes this unreachable; hitting it means a logic defect.
var ErrExhausted = errors.New("shoe: no cards left")

// Shoe holds the undrawn cards for a number of virtual decks. Cards are not
// removed on draw; a cursor advances through the shuffled order so the shoe
// can be reshuffled in place.
type Shoe struct {
	cards  []Card
	cursor int
	rng    *rand.Rand
}

// New builds a shoe of numDecks decks and shuffles it.
func New(numDecks int, rng *rand.Rand) (*Shoe, error) {
	if numDecks < 1 {
		return nil, fmt.Errorf("shoe: deck count must be at least 1, got %d", numDecks)
	}
	s := &Shoe{
		cards: make([]Card, 0, numDecks*cardsPerDeck),
		rng:   rng,
	}
	for d := 0; d < numDecks; d++ {
		for i := 0; i < 4; i++ {
			s.cards = append(s.cards, NewAce())
		}
		for value := 2; value <= 9; value++ {
			for i := 0; i < 4; i++ {
				s.cards = append(s.cards, NewCard(value))
			}
		}
		for i := 0; i < 16; i++ {
			s.cards = append(s.cards, NewCard(10))
		}
	}
	s.Shuffle()
	return s, nil
}

// Stacked builds a shoe that deals the given cards in order, for
// deterministic tests. It never reshuffles into a useful state.
func Stacked(cards ...Card) *Shoe {
	return &Shoe{cards: cards}
}

// Shuffle randomizes the card order and resets the draw cursor.
func (s *Shoe) Shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	s.cursor = 0
}

// Draw returns the next card and advances the cursor.
func (s *Shoe) Draw() (Card, error) {
	if s.cursor >= len(s.cards) {
		return Card{}, ErrExhausted
	}
	card := s.cards[s.cursor]
	s.cursor++
	return card, nil
}

// Penetration returns the fraction of the shoe already drawn.
func (s *Shoe) Penetration() float64 {
	if len(s.cards) == 0 {
		return 0
	}
	return float64(s.cursor) / float64(len(s.cards))
}

// NeedsReshuffle reports whether the shoe should be reshuffled before the
// next round. In auto mode every round starts from a fresh shuffle; in
// manual mode the shoe plays on until penetration passes the threshold.
func (s *Shoe) NeedsReshuffle(auto bool) bool {
	if auto {
		return true
	}
	return s.Penetration() > reshuffleThreshold
}

// Remaining returns the number of undrawn cards.
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.cursor
}

// Size returns the total number of cards in the shoe.
func (s *Shoe) Size() int {
	return len(s.cards)
}
