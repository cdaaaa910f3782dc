// Package strategy implements the fixed basic-strategy tables the simulated
// player follows. Decisions are pure table lookups keyed by hand shape
// (hard, soft, pair), hand total and dealer upcard, with one deliberate
// deviation applied on top: totals of 15 and 16 against a dealer ten always
// hit. Surrender does not exist.
package strategy

// Action is the player decision for one hand.
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	default:
		return "unknown"
	}
}

// HandInfo describes the player hand at decision time.
type HandInfo struct {
	Total int  // best blackjack total
	Soft  bool // an ace is currently counted as 11

	// Pair is set when the hand is two cards of equal counting value.
	// PairRank is the counting rank of the paired card, 1 for aces.
	Pair     bool
	PairRank int

	// FirstDecision is set for a two-card hand making its first decision,
	// which is the only point where doubling is available.
	FirstDecision bool
}

// entry is one cell of a decision table. fallback replaces act when the
// action is Double or Split and that option is unavailable.
type entry struct {
	act      Action
	fallback Action
}

// Tables are indexed [total or pair rank][dealer upcard value], where the
// dealer upcard is its counting value with ace as 11.
var (
	hardTable [22][12]entry
	softTable [22][12]entry
	pairTable [11][12]entry
)

func init() {
	fillHardTable()
	fillSoftTable()
	fillPairTable()
}

func hit() entry    { return entry{act: Hit, fallback: Hit} }
func stand() entry  { return entry{act: Stand, fallback: Stand} }
func double() entry { return entry{act: Double, fallback: Hit} }
func split() entry  { return entry{act: Split, fallback: Hit} }

func fillHardTable() {
	for total := 4; total <= 21; total++ {
		for up := 2; up <= 11; up++ {
			hardTable[total][up] = hardEntry(total, up)
		}
	}
}

func hardEntry(total, up int) entry {
	switch {
	case total >= 17:
		return stand()
	case total >= 13: // 13-16 stand against a weak dealer
		if up <= 6 {
			return stand()
		}
		return hit()
	case total == 12:
		if up >= 4 && up <= 6 {
			return stand()
		}
		return hit()
	case total == 11:
		return double()
	case total == 10:
		if up <= 9 {
			return double()
		}
		return hit()
	case total == 9:
		if up >= 3 && up <= 6 {
			return double()
		}
		return hit()
	default:
		return hit()
	}
}

func fillSoftTable() {
	for total := 12; total <= 21; total++ {
		for up := 2; up <= 11; up++ {
			softTable[total][up] = softEntry(total, up)
		}
	}
}

func softEntry(total, up int) entry {
	switch {
	case total >= 19:
		return stand()
	case total == 18:
		switch {
		case up == 2 || up == 7 || up == 8:
			return stand()
		case up >= 3 && up <= 6:
			return double()
		default:
			return hit()
		}
	case total >= 16: // soft 16-17 double against 3-6
		if up >= 3 && up <= 6 {
			return double()
		}
		return hit()
	case total >= 14: // soft 14-15 double against 4-6
		if up >= 4 && up <= 6 {
			return double()
		}
		return hit()
	case total == 13:
		if up == 5 || up == 6 {
			return double()
		}
		return hit()
	default:
		return hit()
	}
}

func fillPairTable() {
	for rank := 1; rank <= 10; rank++ {
		for up := 2; up <= 11; up++ {
			pairTable[rank][up] = pairEntry(rank, up)
		}
	}
}

func pairEntry(rank, up int) entry {
	switch rank {
	case 1, 8: // aces and eights, always
		return split()
	case 10:
		return stand()
	case 9:
		if up <= 6 || up == 8 || up == 9 {
			return split()
		}
		return stand()
	case 6, 7:
		if up <= 6 {
			return split()
		}
		return hit()
	case 2, 3:
		if up <= 7 {
			return split()
		}
		return hit()
	default: // fours and fives are never split
		return hit()
	}
}

// Decide returns the action for the given hand against the dealer upcard
// (counting value, ace as 11). splitsSoFar and splitLimit bound how many
// splits the round may still perform; when the split budget is spent a
// pair's split entry degrades to its fallback. Doubling degrades the same
// way outside the first decision on a two-card hand.
func Decide(h HandInfo, dealerUp, splitsSoFar, splitLimit int) Action {
	if h.Pair {
		e := pairTable[h.PairRank][dealerUp]
		act := e.act
		if act == Split && splitsSoFar >= splitLimit {
			act = e.fallback
		}
		return act
	}

	var e entry
	if h.Soft {
		e = softTable[h.Total][dealerUp]
	} else {
		e = hardTable[h.Total][dealerUp]
	}
	act := e.act
	if act == Double && !h.FirstDecision {
		act = e.fallback
	}

	// Deliberate deviation: 15 and 16 always hit into a dealer ten.
	if dealerUp == 10 && (h.Total == 15 || h.Total == 16) {
		act = Hit
	}
	return act
}
