package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/report"
	"github.com/lox/blackjacksim/internal/simulator"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"V" help:"Show version"`

	Dealer     string `default:"s17" enum:"s17,h17" help:"Dealer rule: s17 (stand all 17) or h17 (hit soft 17)"`
	Decks      int    `default:"6" help:"Number of decks in the shoe (1-8)"`
	Style      string `default:"A" enum:"A,E,M" help:"Game style: A(merican), E(uropean), M(acau)"`
	Shuffle    string `default:"y" enum:"y,n" help:"Auto shuffle every round (y) or reshuffle at 80% penetration (n)"`
	Games      int    `default:"10000" help:"Number of games to play (1-100000)"`
	Splits     int    `default:"2" help:"Maximum splits per round (1-4)"`
	Multiplier int    `default:"3" help:"Betting progression multiplier (>= 2)"`
	MaxLevel   int    `default:"3" help:"Betting progression ceiling (>= 1)"`
	Seed       int64  `default:"0" help:"RNG seed (0 for time-derived)"`
	Runs       int    `default:"1" help:"Independent runs to simulate in parallel"`
	Config     string `type:"existingfile" optional:"" help:"HCL simulation profile"`
	Verbose    bool   `short:"v" help:"Verbose logging"`
}

// Validate enforces the numeric ranges kong's tags can't express.
func (c *CLI) Validate() error {
	if c.Decks < 1 || c.Decks > 8 {
		return fmt.Errorf("decks must be between 1 and 8, got %d", c.Decks)
	}
	if c.Games < 1 || c.Games > 100000 {
		return fmt.Errorf("games must be between 1 and 100000, got %d", c.Games)
	}
	if c.Splits < 1 || c.Splits > 4 {
		return fmt.Errorf("splits must be between 1 and 4, got %d", c.Splits)
	}
	if c.Multiplier < 2 {
		return fmt.Errorf("multiplier must be at least 2, got %d", c.Multiplier)
	}
	if c.MaxLevel < 1 {
		return fmt.Errorf("max-level must be at least 1, got %d", c.MaxLevel)
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjacksim"),
		kong.Description("Monte-Carlo blackjack simulator with basic strategy and a progressive betting system"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	if cli.Config != "" {
		profile, err := LoadProfile(cli.Config)
		if err != nil {
			return err
		}
		profile.apply(cli)
		// Profile values bypass flag parsing, so re-check the ranges.
		if err := cli.Validate(); err != nil {
			return err
		}
	}

	dealerRule, err := game.ParseDealerRule(cli.Dealer)
	if err != nil {
		return err
	}
	style, err := game.ParseStyle(cli.Style)
	if err != nil {
		return err
	}

	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	autoShuffle := cli.Shuffle == "y"
	fmt.Printf("Starting blackjack simulation: %d decks, %s, %s style, auto-shuffle: %v, %d games, max splits: %d (seed: %d)\n",
		cli.Decks, cli.Dealer, style, autoShuffle, cli.Games, cli.Splits, cli.Seed)

	sim := simulator.New(simulator.Config{
		Games: cli.Games,
		Decks: cli.Decks,
		Rules: game.Rules{
			Dealer:     dealerRule,
			Style:      style,
			SplitLimit: cli.Splits,
		},
		AutoShuffle: autoShuffle,
		Multiplier:  cli.Multiplier,
		MaxLevel:    cli.MaxLevel,
		Seed:        cli.Seed,
		Logger:      logger,
	})

	styles := report.NewStyles()
	if cli.Runs > 1 {
		runs, err := sim.RunBatch(context.Background(), cli.Runs)
		if err != nil {
			return err
		}
		fmt.Print(styles.RenderBatch(runs))
		return nil
	}

	result, err := sim.Run()
	if err != nil {
		return err
	}
	fmt.Print(styles.Render(result))
	return nil
}
