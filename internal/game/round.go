package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjacksim/internal/shoe"
	"github.com/lox/blackjacksim/internal/strategy"
)

// Outcome classifies a whole round for the betting progression: a round
// with both winning and losing hands counts as a push.
type Outcome int

const (
	Push Outcome = iota
	Won
	Lost
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "push"
	}
}

// Result is the money ledger for one completed round. All amounts are
// positive; the round's net effect on equity is Returned - Staked.
type Result struct {
	Outcome Outcome
	// Staked is every unit placed during the round: the original bet plus
	// additions from doubles and splits.
	Staked float64
	// Refunded is the part of Staked handed back before settlement, which
	// happens only on a Macau dealer blackjack. Refunds are not counted as
	// money bet.
	Refunded float64
	// Returned is all money back to the player: refunds, returned stakes
	// on pushes and wins, and winnings.
	Returned float64
	// Won is profit only; Lost is the forfeited stake.
	Won  float64
	Lost float64
	// Hands is the number of player hands settled.
	Hands int
}

// Net returns the round's signed effect on equity.
func (r Result) Net() float64 {
	return r.Returned - r.Staked
}

// Engine plays rounds of blackjack from a shoe under fixed rules, with the
// player following the strategy tables.
type Engine struct {
	shoe   *shoe.Shoe
	rules  Rules
	logger *log.Logger
}

// NewEngine creates a round engine. The shoe's reshuffle policy is the
// caller's responsibility; the engine only draws.
func NewEngine(s *shoe.Shoe, rules Rules, logger *log.Logger) *Engine {
	return &Engine{shoe: s, rules: rules, logger: logger}
}

// PlayRound plays one full round at the given stake and returns its ledger.
// Errors indicate logic defects such as drawing from an exhausted shoe.
func (e *Engine) PlayRound(bet int) (Result, error) {
	res := Result{Staked: float64(bet)}

	player := &Hand{Bet: bet}
	dealer := &Hand{}

	// Initial deal: player, dealer, player. American tables deal the hole
	// card now; European and Macau tables deal it after the player acts.
	if err := e.deal(player, dealer, player); err != nil {
		return Result{}, err
	}
	if e.rules.Style == American {
		if err := e.deal(dealer); err != nil {
			return Result{}, err
		}
	}

	upcard := dealer.Cards[0]
	playerBJ := player.IsBlackjack()

	// American peek: with a ten or ace showing, the hole card settles the
	// round before the player acts.
	if e.rules.Style == American && (upcard.IsTen() || upcard.Ace) && dealer.IsBlackjack() {
		if playerBJ {
			return e.settleEarly(res, Push, float64(bet), 0, 0), nil
		}
		return e.settleEarly(res, Lost, 0, 0, float64(bet)), nil
	}

	// A natural pays 3:2 immediately. With the American peek done, the
	// dealer can no longer have a blackjack to push against it.
	if playerBJ {
		return e.settleEarly(res, Won, 2.5*float64(bet), 1.5*float64(bet), 0), nil
	}

	hands, splits, err := e.playPlayer(player, upcard, bet)
	if err != nil {
		return Result{}, err
	}
	res.Staked += stakedBeyondOriginal(hands, bet, splits)
	res.Hands = len(hands)

	// Deferred blackjack check for European and Macau: draw the hole card
	// now and resolve a dealer blackjack by style.
	if e.rules.Style != American {
		if err := e.deal(dealer); err != nil {
			return Result{}, err
		}
		if dealer.IsBlackjack() {
			return e.settleDealerBlackjack(res, hands, bet), nil
		}
	}

	if err := e.playDealer(dealer, hands); err != nil {
		return Result{}, err
	}

	e.settle(&res, hands, dealer)
	if e.logger != nil {
		dealerTotal, _ := dealer.Value()
		e.logger.Debug("round settled",
			"outcome", res.Outcome,
			"hands", len(hands),
			"dealer", dealerTotal,
			"net", res.Net())
	}
	return res, nil
}

// deal draws one card into each hand, in order.
func (e *Engine) deal(hands ...*Hand) error {
	for _, h := range hands {
		card, err := e.shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealing: %w", err)
		}
		h.Add(card)
	}
	return nil
}

// playPlayer runs the player decision loop over a worklist of pending
// hands. Splits append two single-card hands which are dealt one card each
// and re-enter the worklist; ace-split hands are finalized as they leave it.
func (e *Engine) playPlayer(first *Hand, upcard shoe.Card, bet int) ([]*Hand, int, error) {
	upValue := upcard.Value
	if upcard.Ace {
		upValue = 11
	}

	var settled []*Hand
	splits := 0
	pending := []*Hand{first}
	for len(pending) > 0 {
		h := pending[0]
		pending = pending[1:]

		if h.FromAceSplit {
			// Split aces got their one card when the split was made.
			settled = append(settled, h)
			continue
		}

		replaced, err := e.playHand(h, upValue, &splits, &pending)
		if err != nil {
			return nil, 0, err
		}
		if !replaced {
			settled = append(settled, h)
		}
	}
	return settled, splits, nil
}

// playHand plays a single hand to completion. It returns true when the hand
// was split, i.e. replaced by two new pending hands.
func (e *Engine) playHand(h *Hand, upValue int, splits *int, pending *[]*Hand) (bool, error) {
	for {
		total, soft := h.Value()
		if total > 21 {
			return false, nil // busted, finalized
		}

		action := strategy.Decide(strategy.HandInfo{
			Total:         total,
			Soft:          soft,
			Pair:          h.IsPair(),
			PairRank:      pairRank(h),
			FirstDecision: len(h.Cards) == 2 && !h.Doubled,
		}, upValue, *splits, e.rules.SplitLimit)

		if e.logger != nil {
			e.logger.Debug("player decision",
				"hand", h.String(),
				"total", total,
				"soft", soft,
				"upcard", upValue,
				"action", action)
		}

		switch action {
		case strategy.Stand:
			return false, nil

		case strategy.Hit:
			if err := e.deal(h); err != nil {
				return false, err
			}

		case strategy.Double:
			if len(h.Cards) != 2 || h.Doubled {
				return false, fmt.Errorf("double offered on ineligible hand %s", h)
			}
			h.Bet *= 2
			h.Doubled = true
			if err := e.deal(h); err != nil {
				return false, err
			}
			return false, nil

		case strategy.Split:
			if !h.IsPair() || *splits >= e.rules.SplitLimit {
				return false, fmt.Errorf("split offered on ineligible hand %s", h)
			}
			*splits++
			aces := h.Cards[0].Ace
			left := &Hand{Bet: h.Bet, SplitHand: true, FromAceSplit: aces}
			right := &Hand{Bet: h.Bet, SplitHand: true, FromAceSplit: aces}
			left.Add(h.Cards[0])
			right.Add(h.Cards[1])
			if err := e.deal(left, right); err != nil {
				return false, err
			}
			*pending = append(*pending, left, right)
			return true, nil

		default:
			return false, fmt.Errorf("unknown action %d", action)
		}
	}
}

// playDealer draws the dealer out, standing on 17 or better except for a
// soft 17 under the h17 rule. It is skipped when every player hand busted.
func (e *Engine) playDealer(dealer *Hand, hands []*Hand) error {
	allBusted := true
	for _, h := range hands {
		if !h.IsBusted() {
			allBusted = false
			break
		}
	}
	if allBusted {
		return nil
	}

	for {
		total, soft := dealer.Value()
		if total > 17 {
			return nil
		}
		if total == 17 && (e.rules.Dealer == StandAll17 || !soft) {
			return nil
		}
		if err := e.deal(dealer); err != nil {
			return err
		}
	}
}

// settle compares every player hand against the dealer and fills in the
// round ledger.
func (e *Engine) settle(res *Result, hands []*Hand, dealer *Hand) {
	dealerTotal, _ := dealer.Value()
	dealerBusted := dealerTotal > 21

	var anyWon, anyLost bool
	for _, h := range hands {
		total, _ := h.Value()
		stake := float64(h.Bet)
		switch {
		case total > 21:
			res.Lost += stake
			anyLost = true
		case dealerBusted || total > dealerTotal:
			res.Returned += 2 * stake
			res.Won += stake
			anyWon = true
		case total < dealerTotal:
			res.Lost += stake
			anyLost = true
		default:
			res.Returned += stake
		}
	}

	switch {
	case anyWon && !anyLost:
		res.Outcome = Won
	case anyLost && !anyWon:
		res.Outcome = Lost
	default:
		res.Outcome = Push
	}
}

// settleDealerBlackjack resolves a deferred dealer blackjack. European
// tables forfeit every stake in the round; Macau tables forfeit only the
// original bet per hand and refund the additions from doubles and splits.
func (e *Engine) settleDealerBlackjack(res Result, hands []*Hand, bet int) Result {
	res.Outcome = Lost
	for _, h := range hands {
		if e.rules.Style == Macau {
			extra := float64(h.Bet - bet)
			res.Refunded += extra
			res.Returned += extra
			res.Lost += float64(bet)
		} else {
			res.Lost += float64(h.Bet)
		}
	}
	if e.logger != nil {
		e.logger.Debug("dealer blackjack", "style", e.rules.Style, "hands", len(hands), "lost", res.Lost, "refunded", res.Refunded)
	}
	return res
}

// settleEarly finishes a round that never reached the player decision loop:
// an American peeked blackjack or a player natural.
func (e *Engine) settleEarly(res Result, outcome Outcome, returned, won, lost float64) Result {
	res.Outcome = outcome
	res.Returned = returned
	res.Won = won
	res.Lost = lost
	res.Hands = 1
	if e.logger != nil {
		e.logger.Debug("round settled early", "outcome", outcome, "net", res.Net())
	}
	return res
}

// stakedBeyondOriginal sums the stake added during play: one original bet
// per split plus the increment on each doubled hand.
func stakedBeyondOriginal(hands []*Hand, bet, splits int) float64 {
	extra := float64(splits * bet)
	for _, h := range hands {
		if h.Doubled {
			extra += float64(h.Bet) / 2
		}
	}
	return extra
}

func pairRank(h *Hand) int {
	if !h.IsPair() {
		return 0
	}
	return h.Cards[0].Value
}
