// Package betting implements the three-outcome betting progression. State
// is a (level, score) pair with pure transitions, so a scripted sequence of
// outcomes fully determines the stake for every round.
package betting

import (
	"fmt"

	"github.com/lox/blackjacksim/internal/game"
)

// minScore is the loss streak that triggers a level change.
const minScore = -3

// State is the progression state machine. Level stays in [1, MaxLevel] and
// score in [minScore+1, 0] between transitions.
type State struct {
	Level int
	Score int

	Multiplier int
	MaxLevel   int
}

// New creates a progression at level 1, score 0.
func New(multiplier, maxLevel int) (*State, error) {
	if multiplier < 2 {
		return nil, fmt.Errorf("betting: multiplier must be at least 2, got %d", multiplier)
	}
	if maxLevel < 1 {
		return nil, fmt.Errorf("betting: max level must be at least 1, got %d", maxLevel)
	}
	return &State{Level: 1, Multiplier: multiplier, MaxLevel: maxLevel}, nil
}

// Bet returns the stake for the next round: multiplier^(level-1) units.
func (s *State) Bet() int {
	bet := 1
	for i := 1; i < s.Level; i++ {
		bet *= s.Multiplier
	}
	return bet
}

// Apply transitions the state on a round outcome.
func (s *State) Apply(outcome game.Outcome) {
	switch outcome {
	case game.Won:
		s.win()
	case game.Lost:
		s.loss()
	}
	// Push leaves the state untouched.
}

// win retreats one level when an elevated level wins at score 0; otherwise
// the score recovers toward its cap of 0.
func (s *State) win() {
	if s.Score == 0 {
		if s.Level > 1 {
			s.Level--
		}
		return
	}
	s.Score++
}

// loss decrements the score; a third consecutive unrecovered loss resets
// the score and moves up a level, except at the ceiling, which drops the
// whole progression back to level 1.
func (s *State) loss() {
	s.Score--
	if s.Score > minScore {
		return
	}
	s.Score = 0
	if s.Level >= s.MaxLevel {
		s.Level = 1
		return
	}
	s.Level++
}

// Validate checks the state bounds. A violation is a logic defect.
func (s *State) Validate() error {
	if s.Level < 1 || s.Level > s.MaxLevel {
		return fmt.Errorf("betting: level %d outside [1, %d]", s.Level, s.MaxLevel)
	}
	if s.Score < minScore || s.Score > 0 {
		return fmt.Errorf("betting: score %d outside [%d, 0]", s.Score, minScore)
	}
	return nil
}

// String renders the progression snapshot for the final report.
func (s *State) String() string {
	return fmt.Sprintf("Level: %d, Score: %d, Bet: %d", s.Level, s.Score, s.Bet())
}
