package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjacksim/internal/shoe"
)

func card(v int) shoe.Card { return shoe.NewCard(v) }
func ace() shoe.Card       { return shoe.NewAce() }

func playStacked(t *testing.T, rules Rules, bet int, cards ...shoe.Card) Result {
	t.Helper()
	engine := NewEngine(shoe.Stacked(cards...), rules, nil)
	res, err := engine.PlayRound(bet)
	require.NoError(t, err)
	return res
}

func american(limit int) Rules {
	return Rules{Dealer: StandAll17, Style: American, SplitLimit: limit}
}

func TestPlayRound_PlayerNatural(t *testing.T) {
	// Upcard 9 means no peek; the natural pays 3:2 immediately.
	res := playStacked(t, american(2), 2, ace(), card(9), card(10), card(5))

	assert.Equal(t, Won, res.Outcome)
	assert.Equal(t, 2.0, res.Staked)
	assert.Equal(t, 5.0, res.Returned)
	assert.Equal(t, 3.0, res.Won)
	assert.Equal(t, 0.0, res.Lost)
}

func TestPlayRound_AmericanPeekDealerBlackjack(t *testing.T) {
	// Only four cards stacked: the round must settle before any player
	// decision draws a fifth.
	res := playStacked(t, american(2), 1, card(10), card(10), card(9), ace())

	assert.Equal(t, Lost, res.Outcome)
	assert.Equal(t, 1.0, res.Lost)
	assert.Equal(t, 0.0, res.Returned)
}

func TestPlayRound_AmericanBothBlackjackPushes(t *testing.T) {
	res := playStacked(t, american(2), 1, ace(), card(10), card(10), ace())

	assert.Equal(t, Push, res.Outcome)
	assert.Equal(t, 1.0, res.Returned)
	assert.Equal(t, 0.0, res.Won)
	assert.Equal(t, 0.0, res.Lost)
}

func TestPlayRound_StandoffTotalsPush(t *testing.T) {
	res := playStacked(t, american(2), 1, card(10), card(10), card(9), card(9))

	assert.Equal(t, Push, res.Outcome)
	assert.Equal(t, 1.0, res.Returned)
}

func TestPlayRound_DealerBustPaysEvenMoney(t *testing.T) {
	res := playStacked(t, american(2), 1, card(10), card(6), card(10), card(10), card(10))

	assert.Equal(t, Won, res.Outcome)
	assert.Equal(t, 1.0, res.Won)
	assert.Equal(t, 2.0, res.Returned)
}

func TestPlayRound_SixteenHitsIntoDealerTen(t *testing.T) {
	// Hard 16 against a ten must hit; here the hit makes 21 and wins.
	res := playStacked(t, american(2), 1, card(9), card(10), card(7), card(7), card(5))

	assert.Equal(t, Won, res.Outcome)
	assert.Equal(t, 1.0, res.Won)
}

func TestPlayRound_DoubleDown(t *testing.T) {
	// Hard 11 doubles, takes one card, and the dealer busts.
	res := playStacked(t, american(2), 1, card(6), card(6), card(5), card(10), card(9), card(10))

	assert.Equal(t, Won, res.Outcome)
	assert.Equal(t, 2.0, res.Staked)
	assert.Equal(t, 4.0, res.Returned)
	assert.Equal(t, 2.0, res.Won)
	assert.Equal(t, 1, res.Hands)
}

func TestPlayRound_SplitEights(t *testing.T) {
	res := playStacked(t, american(2), 1, card(8), card(7), card(8), card(10), card(10), card(10))

	assert.Equal(t, Won, res.Outcome)
	assert.Equal(t, 2, res.Hands)
	assert.Equal(t, 2.0, res.Staked)
	assert.Equal(t, 4.0, res.Returned)
	assert.Equal(t, 2.0, res.Won)
}

func TestPlayRound_SplitLimitFallsBackToHit(t *testing.T) {
	// The second hand re-pairs but the single split is spent, so it hits
	// its 16 instead of splitting again.
	rules := Rules{Dealer: StandAll17, Style: American, SplitLimit: 1}
	res := playStacked(t, rules, 1,
		card(8), card(7), card(8), card(10), card(10), card(8), card(5))

	assert.Equal(t, Won, res.Outcome)
	assert.Equal(t, 2, res.Hands)
	assert.Equal(t, 2.0, res.Won)
}

func TestPlayRound_AceSplitTakesOneCardEach(t *testing.T) {
	// A+5 (16) loses to the dealer 17 and may not hit again; A+T (21,
	// not a natural) wins at even money. Mixed results push the round.
	res := playStacked(t, american(2), 1, ace(), card(7), ace(), card(10), card(5), card(10))

	assert.Equal(t, Push, res.Outcome)
	assert.Equal(t, 2, res.Hands)
	assert.Equal(t, 1.0, res.Won)
	assert.Equal(t, 1.0, res.Lost)
	assert.Equal(t, 2.0, res.Returned)
}

func TestPlayRound_AllBustedSkipsDealerPlay(t *testing.T) {
	// Exactly five cards: if the dealer drew after the player bust the
	// shoe would be exhausted and the round would error.
	res := playStacked(t, american(2), 1, card(10), card(7), card(6), card(5), card(10))

	assert.Equal(t, Lost, res.Outcome)
	assert.Equal(t, 1.0, res.Lost)
	assert.Equal(t, 0.0, res.Returned)
}

func TestPlayRound_DealerSoft17ByRule(t *testing.T) {
	cards := func() []shoe.Card {
		return []shoe.Card{card(10), card(6), card(7), ace(), card(4)}
	}

	// s17: the dealer stands on soft 17 and the 17s push.
	s17 := playStacked(t, Rules{Dealer: StandAll17, Style: American, SplitLimit: 2}, 1, cards()...)
	assert.Equal(t, Push, s17.Outcome)

	// h17: the dealer hits soft 17 into 21 and wins.
	h17 := playStacked(t, Rules{Dealer: HitSoft17, Style: American, SplitLimit: 2}, 1, cards()...)
	assert.Equal(t, Lost, h17.Outcome)
}

func TestPlayRound_EuropeanDealerBlackjackForfeitsAll(t *testing.T) {
	rules := Rules{Dealer: StandAll17, Style: European, SplitLimit: 2}
	res := playStacked(t, rules, 1, card(5), ace(), card(6), card(10), card(10))

	assert.Equal(t, Lost, res.Outcome)
	assert.Equal(t, 2.0, res.Staked, "the double was staked")
	assert.Equal(t, 2.0, res.Lost, "the whole stake is forfeited")
	assert.Equal(t, 0.0, res.Refunded)
	assert.Equal(t, 0.0, res.Returned)
}

func TestPlayRound_MacauDealerBlackjackRefundsAdditions(t *testing.T) {
	rules := Rules{Dealer: StandAll17, Style: Macau, SplitLimit: 2}
	res := playStacked(t, rules, 1, card(5), ace(), card(6), card(10), card(10))

	assert.Equal(t, Lost, res.Outcome)
	assert.Equal(t, 2.0, res.Staked)
	assert.Equal(t, 1.0, res.Lost, "only the original bet is forfeited")
	assert.Equal(t, 1.0, res.Refunded)
	assert.Equal(t, 1.0, res.Returned)
	assert.Equal(t, -1.0, res.Net())
}

func TestPlayRound_EuropeanNaturalResolvesBeforeHoleCard(t *testing.T) {
	// Three cards only: the natural pays out without the dealer drawing.
	rules := Rules{Dealer: StandAll17, Style: European, SplitLimit: 2}
	res := playStacked(t, rules, 1, ace(), card(5), card(10))

	assert.Equal(t, Won, res.Outcome)
	assert.Equal(t, 1.5, res.Won)
	assert.Equal(t, 2.5, res.Returned)
}

func TestPlayRound_ExhaustedShoeErrors(t *testing.T) {
	engine := NewEngine(shoe.Stacked(card(5), card(6)), american(2), nil)
	_, err := engine.PlayRound(1)
	require.ErrorIs(t, err, shoe.ErrExhausted)
}

func TestPlayRound_LedgerIdentity(t *testing.T) {
	// Returned - Staked must equal Won - Lost for every settlement shape.
	rounds := [][]shoe.Card{
		{ace(), card(9), card(10), card(5)},
		{card(10), card(10), card(9), ace()},
		{card(10), card(6), card(10), card(10), card(10)},
		{ace(), card(7), ace(), card(10), card(5), card(10)},
		{card(5), ace(), card(6), card(10), card(10)},
	}
	for i, cards := range rounds {
		for _, style := range []Style{American, European, Macau} {
			if style == American && i == 4 {
				continue // stack is shaped for the deferred hole card
			}
			rules := Rules{Dealer: StandAll17, Style: style, SplitLimit: 2}
			engine := NewEngine(shoe.Stacked(cards...), rules, nil)
			res, err := engine.PlayRound(1)
			if err != nil {
				continue // some stacks are too short for some styles
			}
			assert.InDelta(t, res.Won-res.Lost, res.Net(), 1e-9, "round %d style %s", i, style)
		}
	}
}
