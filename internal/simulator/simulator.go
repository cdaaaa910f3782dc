// Package simulator drives full simulation runs: it owns the shoe lifecycle,
// feeds stakes from the betting progression into the round engine, and
// threads every round's ledger into the statistics accumulator.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacksim/internal/betting"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/shoe"
	"github.com/lox/blackjacksim/internal/statistics"
)

// Config holds everything a run needs. Zero Clock means the real clock.
type Config struct {
	Games       int
	Decks       int
	Rules       game.Rules
	AutoShuffle bool
	Multiplier  int
	MaxLevel    int
	Seed        int64
	Logger      *log.Logger
	Clock       quartz.Clock
}

// RunResult is one completed run: its aggregates, the final progression
// snapshot, the seed that produced it and how long it took.
type RunResult struct {
	Seed     int64
	Results  *statistics.Results
	Betting  *betting.State
	Duration time.Duration
}

// Simulator runs blackjack simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes one sequential simulation of the configured round count.
func (s *Simulator) Run() (*RunResult, error) {
	return s.run(s.config.Seed)
}

func (s *Simulator) run(seed int64) (*RunResult, error) {
	rng := randutil.New(seed)
	deck, err := shoe.New(s.config.Decks, rng)
	if err != nil {
		return nil, err
	}
	state, err := betting.New(s.config.Multiplier, s.config.MaxLevel)
	if err != nil {
		return nil, err
	}

	engine := game.NewEngine(deck, s.config.Rules, s.config.Logger)
	results := &statistics.Results{MaxLevel: state.Level}

	start := s.config.Clock.Now()
	for round := 0; round < s.config.Games; round++ {
		if deck.NeedsReshuffle(s.config.AutoShuffle) {
			deck.Shuffle()
		}

		bet := state.Bet()
		res, err := engine.PlayRound(bet)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}

		results.Add(statistics.Round{
			Won:      res.Outcome == game.Won,
			Lost:     res.Outcome == game.Lost,
			Staked:   res.Staked,
			Refunded: res.Refunded,
			WonAmt:   res.Won,
			LostAmt:  res.Lost,
			Net:      res.Net(),
			Level:    state.Level,
		})
		state.Apply(res.Outcome)

		if err := state.Validate(); err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}
	}
	duration := s.config.Clock.Since(start)

	if err := results.Validate(); err != nil {
		return nil, err
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("run complete",
			"seed", seed,
			"games", results.TotalGames,
			"equity", results.Equity,
			"duration", duration)
	}

	return &RunResult{
		Seed:     seed,
		Results:  results,
		Betting:  state,
		Duration: duration,
	}, nil
}

// RunBatch executes runs independent simulations concurrently, each fully
// sequential internally with its own child seed, and returns them in order.
func (s *Simulator) RunBatch(ctx context.Context, runs int) ([]*RunResult, error) {
	if runs < 1 {
		return nil, fmt.Errorf("simulator: run count must be at least 1, got %d", runs)
	}
	if runs == 1 {
		result, err := s.Run()
		if err != nil {
			return nil, err
		}
		return []*RunResult{result}, nil
	}

	results := make([]*RunResult, runs)
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < runs; i++ {
		g.Go(func() error {
			result, err := s.run(randutil.Derive(s.config.Seed, i))
			if err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
