// Package report renders simulation results for the console.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjacksim/internal/simulator"
)

// Styles contains styling for the console report.
type Styles struct {
	Header    lipgloss.Style
	Section   lipgloss.Style
	Label     lipgloss.Style
	Profit    lipgloss.Style
	LossStyle lipgloss.Style
	Neutral   lipgloss.Style
}

// NewStyles creates the default report styles.
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#005F87")).
			Padding(0, 2).
			Bold(true),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
		Profit: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		LossStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Neutral: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
	}
}

// money styles a signed amount green, red or gold by sign.
func (s *Styles) money(v float64) string {
	text := fmt.Sprintf("%.2f", v)
	switch {
	case v > 0:
		return s.Profit.Render(text)
	case v < 0:
		return s.LossStyle.Render(text)
	default:
		return s.Neutral.Render(text)
	}
}

// Render formats the full report for one completed run.
func (s *Styles) Render(run *simulator.RunResult) string {
	r := run.Results
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.Header.Render("BLACKJACK SIMULATION RESULTS"))
	b.WriteString("\n\n")

	b.WriteString(s.Section.Render("Games") + "\n")
	fmt.Fprintf(&b, "  %s %d\n", s.Label.Render("Played:"), r.TotalGames)
	fmt.Fprintf(&b, "  %s %d (%.2f%%)\n", s.Label.Render("Won:   "), r.WonGames, r.WinRate()*100)
	fmt.Fprintf(&b, "  %s %d (%.2f%%)\n", s.Label.Render("Lost:  "), r.LostGames, r.LossRate()*100)
	fmt.Fprintf(&b, "  %s %d (%.2f%%)\n", s.Label.Render("Pushed:"), r.PushGames, r.PushRate()*100)
	b.WriteString("\n")

	b.WriteString(s.Section.Render("Equity") + "\n")
	fmt.Fprintf(&b, "  %s %s\n", s.Label.Render("Final:       "), s.money(r.Equity))
	fmt.Fprintf(&b, "  %s %s\n", s.Label.Render("Max:         "), s.money(r.MaxEquity))
	fmt.Fprintf(&b, "  %s %s\n", s.Label.Render("Min:         "), s.money(r.MinEquity))
	fmt.Fprintf(&b, "  %s %.2f\n", s.Label.Render("Max drawdown:"), r.MaxDrawdown)
	b.WriteString("\n")

	b.WriteString(s.Section.Render("Amounts") + "\n")
	fmt.Fprintf(&b, "  %s %.2f\n", s.Label.Render("Total bet:   "), r.TotalBet)
	fmt.Fprintf(&b, "  %s %.2f\n", s.Label.Render("Won (profit):"), r.WonAmount)
	fmt.Fprintf(&b, "  %s %.2f\n", s.Label.Render("Lost:        "), r.LostAmount)
	b.WriteString("\n")

	b.WriteString(s.Section.Render("Expectation") + "\n")
	fmt.Fprintf(&b, "  %s %.4f\n", s.Label.Render("Return:"), r.ExpectedReturn())
	fmt.Fprintf(&b, "  %s %.4f\n", s.Label.Render("Loss:  "), r.ExpectedLoss())
	fmt.Fprintf(&b, "  %s %s\n", s.Label.Render("Value: "), s.money(r.ExpectedValue()))
	b.WriteString("\n")

	b.WriteString(s.Section.Render("Betting system") + "\n")
	fmt.Fprintf(&b, "  %s %s\n", s.Label.Render("Final:    "), run.Betting.String())
	fmt.Fprintf(&b, "  %s %d\n", s.Label.Render("Max level:"), r.MaxLevel)
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s seed %d, %s\n",
		s.Label.Render("Run:"), run.Seed, run.Duration.Round(time.Millisecond))

	return b.String()
}

// RenderBatch formats a one-line summary per run plus the mean expected
// value across the batch.
func (s *Styles) RenderBatch(runs []*simulator.RunResult) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.Header.Render(fmt.Sprintf("BATCH RESULTS (%d RUNS)", len(runs))))
	b.WriteString("\n\n")

	meanEV := 0.0
	for i, run := range runs {
		r := run.Results
		fmt.Fprintf(&b, "  %s games=%d equity=%s ev=%.4f drawdown=%.2f seed=%d\n",
			s.Label.Render(fmt.Sprintf("run %d:", i+1)),
			r.TotalGames, s.money(r.Equity), r.ExpectedValue(), r.MaxDrawdown, run.Seed)
		meanEV += r.ExpectedValue()
	}
	meanEV /= float64(len(runs))

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %.4f\n", s.Label.Render("Mean expected value:"), meanEV)
	return b.String()
}
