package main

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Profile is an HCL simulation profile. Values present in the file take
// the place of flag values, so a profile pins a whole table configuration:
//
//	simulation {
//	  dealer = "h17"
//	  decks  = 8
//	  style  = "E"
//	}
type Profile struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
}

// SimulationSettings mirrors the CLI knobs. All attributes are optional;
// absent ones leave the flag value in place.
type SimulationSettings struct {
	Dealer     string `hcl:"dealer,optional"`
	Decks      int    `hcl:"decks,optional"`
	Style      string `hcl:"style,optional"`
	Shuffle    string `hcl:"shuffle,optional"`
	Games      int    `hcl:"games,optional"`
	Splits     int    `hcl:"splits,optional"`
	Multiplier int    `hcl:"multiplier,optional"`
	MaxLevel   int    `hcl:"max_level,optional"`
	Seed       int64  `hcl:"seed,optional"`
	Runs       int    `hcl:"runs,optional"`
}

// LoadProfile parses an HCL profile file.
func LoadProfile(filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var profile Profile
	diags = gohcl.DecodeBody(file.Body, nil, &profile)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &profile, nil
}

// apply copies the profile's set values onto the CLI.
func (p *Profile) apply(cli *CLI) {
	s := p.Simulation
	if s.Dealer != "" {
		cli.Dealer = s.Dealer
	}
	if s.Decks != 0 {
		cli.Decks = s.Decks
	}
	if s.Style != "" {
		cli.Style = s.Style
	}
	if s.Shuffle != "" {
		cli.Shuffle = s.Shuffle
	}
	if s.Games != 0 {
		cli.Games = s.Games
	}
	if s.Splits != 0 {
		cli.Splits = s.Splits
	}
	if s.Multiplier != 0 {
		cli.Multiplier = s.Multiplier
	}
	if s.MaxLevel != 0 {
		cli.MaxLevel = s.MaxLevel
	}
	if s.Seed != 0 {
		cli.Seed = s.Seed
	}
	if s.Runs != 0 {
		cli.Runs = s.Runs
	}
}
