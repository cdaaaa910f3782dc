// Package statistics accumulates run-wide results for a simulation. The
// accumulator is a plain value threaded through the round loop, so batched
// runs never share state.
package statistics

import (
	"fmt"
	"math"
)

// Round is the slice of one round's ledger that the accumulator consumes.
type Round struct {
	Won      bool
	Lost     bool
	Staked   float64 // everything placed this round
	Refunded float64 // stake handed back before settlement, not counted as bet
	WonAmt   float64 // profit only
	LostAmt  float64 // forfeited stake
	Net      float64 // signed equity change
	Level    int     // betting level the round was played at
}

// Results carries the running aggregates for a simulation.
type Results struct {
	TotalGames int
	WonGames   int
	LostGames  int
	PushGames  int

	Equity      float64
	MaxEquity   float64
	MinEquity   float64
	MaxDrawdown float64

	TotalBet   float64
	WonAmount  float64 // profit only
	LostAmount float64

	MaxLevel int
}

// Add folds one round into the aggregates and updates equity tracking.
func (r *Results) Add(round Round) {
	r.TotalGames++
	switch {
	case round.Won && !round.Lost:
		r.WonGames++
	case round.Lost && !round.Won:
		r.LostGames++
	default:
		r.PushGames++
	}

	r.TotalBet += round.Staked - round.Refunded
	r.WonAmount += round.WonAmt
	r.LostAmount += round.LostAmt
	r.Equity += round.Net

	if round.Level > r.MaxLevel {
		r.MaxLevel = round.Level
	}

	if r.Equity > r.MaxEquity {
		r.MaxEquity = r.Equity
	}
	if r.Equity < r.MinEquity {
		r.MinEquity = r.Equity
	}
	if dd := r.MaxEquity - r.Equity; dd > r.MaxDrawdown {
		r.MaxDrawdown = dd
	}
}

// ExpectedReturn is won amount over total bet.
func (r *Results) ExpectedReturn() float64 {
	if r.TotalBet == 0 {
		return r.WonAmount
	}
	return r.WonAmount / r.TotalBet
}

// ExpectedLoss is lost amount over total bet.
func (r *Results) ExpectedLoss() float64 {
	if r.TotalBet == 0 {
		return r.LostAmount
	}
	return r.LostAmount / r.TotalBet
}

// ExpectedValue is net profit over total bet.
func (r *Results) ExpectedValue() float64 {
	if r.TotalBet == 0 {
		return r.WonAmount - r.LostAmount
	}
	return (r.WonAmount - r.LostAmount) / r.TotalBet
}

// WinRate returns the fraction of rounds won.
func (r *Results) WinRate() float64 { return r.rate(r.WonGames) }

// LossRate returns the fraction of rounds lost.
func (r *Results) LossRate() float64 { return r.rate(r.LostGames) }

// PushRate returns the fraction of rounds pushed.
func (r *Results) PushRate() float64 { return r.rate(r.PushGames) }

func (r *Results) rate(n int) float64 {
	if r.TotalGames == 0 {
		return 0
	}
	return float64(n) / float64(r.TotalGames)
}

// Validate checks the accounting identities that must hold for any
// completed run. A failure means a logic defect, not bad input.
func (r *Results) Validate() error {
	if r.WonGames+r.LostGames+r.PushGames != r.TotalGames {
		return fmt.Errorf("game counts do not sum: %d won + %d lost + %d push != %d total",
			r.WonGames, r.LostGames, r.PushGames, r.TotalGames)
	}
	if math.Abs(r.Equity-(r.WonAmount-r.LostAmount)) > 1e-6 {
		return fmt.Errorf("equity %.6f does not equal won-lost %.6f",
			r.Equity, r.WonAmount-r.LostAmount)
	}
	if r.MaxDrawdown < 0 {
		return fmt.Errorf("negative max drawdown %.6f", r.MaxDrawdown)
	}
	if r.MaxEquity < r.MinEquity {
		return fmt.Errorf("max equity %.6f below min equity %.6f", r.MaxEquity, r.MinEquity)
	}
	return nil
}
