package game

import "fmt"

// DealerRule controls how the dealer plays a soft 17.
type DealerRule int

const (
	// StandAll17 stands on every 17.
	StandAll17 DealerRule = iota
	// HitSoft17 hits a soft 17 and stands on hard 17 and above.
	HitSoft17
)

// ParseDealerRule converts the CLI value ("s17" or "h17").
func ParseDealerRule(s string) (DealerRule, error) {
	switch s {
	case "s17":
		return StandAll17, nil
	case "h17":
		return HitSoft17, nil
	default:
		return 0, fmt.Errorf("unknown dealer rule %q (want s17 or h17)", s)
	}
}

// String returns the CLI form of the rule.
func (r DealerRule) String() string {
	if r == HitSoft17 {
		return "h17"
	}
	return "s17"
}

// Style selects how the dealer's hand is dealt and how a dealer blackjack
// resolves against the player's stakes.
type Style int

const (
	// American deals the dealer two cards and peeks for blackjack when the
	// upcard is a ten-value or an ace.
	American Style = iota
	// European deals one dealer card up front; a dealer blackjack found
	// after the player acts forfeits every stake in the round.
	European
	// Macau deals like European but a dealer blackjack forfeits only the
	// original bets, returning stakes added by doubling or splitting.
	Macau
)

// ParseStyle converts the CLI value ("A", "E" or "M").
func ParseStyle(s string) (Style, error) {
	switch s {
	case "A":
		return American, nil
	case "E":
		return European, nil
	case "M":
		return Macau, nil
	default:
		return 0, fmt.Errorf("unknown game style %q (want A, E or M)", s)
	}
}

// String returns the long name of the style.
func (s Style) String() string {
	switch s {
	case European:
		return "European"
	case Macau:
		return "Macau"
	default:
		return "American"
	}
}

// Rules fixes the table rules for a simulation.
type Rules struct {
	Dealer     DealerRule
	Style      Style
	SplitLimit int // maximum splits per round
}
