package simulator

import (
	"context"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjacksim/internal/game"
)

func testConfig(t *testing.T, seed int64) Config {
	t.Helper()
	return Config{
		Games: 500,
		Decks: 6,
		Rules: game.Rules{
			Dealer:     game.StandAll17,
			Style:      game.American,
			SplitLimit: 2,
		},
		AutoShuffle: true,
		Multiplier:  3,
		MaxLevel:    3,
		Seed:        seed,
		Clock:       quartz.NewMock(t),
	}
}

func TestRun_CountsAndLedger(t *testing.T) {
	sim := New(testConfig(t, 1234))
	run, err := sim.Run()
	require.NoError(t, err)

	r := run.Results
	assert.Equal(t, 500, r.TotalGames)
	assert.Equal(t, r.TotalGames, r.WonGames+r.LostGames+r.PushGames)
	assert.InDelta(t, r.WonAmount-r.LostAmount, r.Equity, 1e-6)
	assert.GreaterOrEqual(t, r.MaxDrawdown, 0.0)
	assert.GreaterOrEqual(t, r.MaxLevel, 1)
	assert.LessOrEqual(t, r.MaxLevel, 3)
	require.NoError(t, run.Betting.Validate())
}

func TestRun_DeterministicForSeed(t *testing.T) {
	a, err := New(testConfig(t, 77)).Run()
	require.NoError(t, err)
	b, err := New(testConfig(t, 77)).Run()
	require.NoError(t, err)

	assert.Equal(t, a.Results, b.Results)
	assert.Equal(t, a.Betting, b.Betting)
}

func TestRun_SeedChangesOutcome(t *testing.T) {
	a, err := New(testConfig(t, 1)).Run()
	require.NoError(t, err)
	b, err := New(testConfig(t, 2)).Run()
	require.NoError(t, err)

	// Not guaranteed in principle, but 500 rounds of differing shuffles
	// colliding on every aggregate would itself be a defect.
	assert.NotEqual(t, a.Results, b.Results)
}

func TestRun_ManualShufflePenetration(t *testing.T) {
	config := testConfig(t, 55)
	config.Decks = 4
	config.AutoShuffle = false

	run, err := New(config).Run()
	require.NoError(t, err)
	assert.Equal(t, 500, run.Results.TotalGames)
	require.NoError(t, run.Results.Validate())
}

func TestRun_EveryStyleAndRule(t *testing.T) {
	for _, style := range []game.Style{game.American, game.European, game.Macau} {
		for _, rule := range []game.DealerRule{game.StandAll17, game.HitSoft17} {
			config := testConfig(t, 9)
			config.Rules.Style = style
			config.Rules.Dealer = rule

			run, err := New(config).Run()
			require.NoError(t, err, "style %s rule %s", style, rule)
			require.NoError(t, run.Results.Validate(), "style %s rule %s", style, rule)
		}
	}
}

func TestRunBatch_IndependentDeterministicRuns(t *testing.T) {
	sim := New(testConfig(t, 500))
	runs, err := sim.RunBatch(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.NotEqual(t, runs[0].Seed, runs[1].Seed)
	assert.NotEqual(t, runs[0].Results, runs[1].Results)

	again, err := New(testConfig(t, 500)).RunBatch(context.Background(), 3)
	require.NoError(t, err)
	for i := range runs {
		assert.Equal(t, runs[i].Seed, again[i].Seed, "run %d", i)
		assert.Equal(t, runs[i].Results, again[i].Results, "run %d", i)
	}
}

func TestRunBatch_RejectsBadCount(t *testing.T) {
	_, err := New(testConfig(t, 1)).RunBatch(context.Background(), 0)
	assert.Error(t, err)
}
