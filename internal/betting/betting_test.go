package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(1, 3)
	assert.Error(t, err)

	_, err = New(3, 0)
	assert.Error(t, err)

	s, err := New(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.Score)
}

func TestBet_MultiplierProgression(t *testing.T) {
	s, err := New(3, 5)
	require.NoError(t, err)

	for level, want := range map[int]int{1: 1, 2: 3, 3: 9, 4: 27} {
		s.Level = level
		assert.Equal(t, want, s.Bet(), "level %d", level)
	}

	s, err = New(2, 5)
	require.NoError(t, err)
	s.Level = 4
	assert.Equal(t, 8, s.Bet())
}

func TestApply_ThreeLossesLevelUp(t *testing.T) {
	s, err := New(3, 3)
	require.NoError(t, err)
	require.Equal(t, 1, s.Bet())

	s.Apply(game.Lost)
	assert.Equal(t, -1, s.Score)
	s.Apply(game.Lost)
	assert.Equal(t, -2, s.Score)
	s.Apply(game.Lost)

	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 3, s.Bet())
}

func TestApply_WinAtScoreZeroRetreatsLevel(t *testing.T) {
	s, err := New(3, 3)
	require.NoError(t, err)
	s.Level = 2

	s.Apply(game.Won)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Bet())
}

func TestApply_WinAtLevelOneScoreZeroIsNoop(t *testing.T) {
	s, err := New(3, 3)
	require.NoError(t, err)

	s.Apply(game.Won)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.Score)
}

func TestApply_WinRecoversScoreWithoutLevelChange(t *testing.T) {
	s, err := New(3, 3)
	require.NoError(t, err)
	s.Level = 2
	s.Score = -2

	s.Apply(game.Won)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, -1, s.Score)
}

func TestApply_LossAtCeilingResetsToLevelOne(t *testing.T) {
	s, err := New(3, 3)
	require.NoError(t, err)
	s.Level = 3
	s.Score = -2

	s.Apply(game.Lost)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.Score)
}

func TestApply_PushChangesNothing(t *testing.T) {
	s, err := New(3, 3)
	require.NoError(t, err)
	s.Level = 2
	s.Score = -1

	s.Apply(game.Push)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, -1, s.Score)
}

func TestApply_BoundsHoldUnderRandomScript(t *testing.T) {
	rng := randutil.New(123)
	outcomes := []game.Outcome{game.Won, game.Lost, game.Push}

	for _, maxLevel := range []int{1, 3, 5} {
		s, err := New(3, maxLevel)
		require.NoError(t, err)

		for i := 0; i < 10000; i++ {
			s.Apply(outcomes[rng.IntN(len(outcomes))])
			require.NoError(t, s.Validate(), "maxLevel=%d step=%d", maxLevel, i)
		}
	}
}
