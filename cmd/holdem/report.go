package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/statistics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// renderReport formats a simulation report for the terminal.
func renderReport(r *statistics.Report, bigBlind int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(" ♠ ♥ Simulation Results ♦ ♣ "))
	b.WriteString("\n\n")

	pct := func(n int) float64 {
		if r.Hands == 0 {
			return 0
		}
		return float64(n) / float64(r.Hands) * 100
	}
	avgPot := 0.0
	if r.Hands > 0 && bigBlind > 0 {
		avgPot = float64(r.TotalPot) / float64(r.Hands) / float64(bigBlind)
	}

	fmt.Fprintf(&b, "Hands played: %d\n", r.Hands)
	fmt.Fprintf(&b, "Showdowns: %d (%.1f%%), uncontested: %d (%.1f%%)\n",
		r.Showdowns, pct(r.Showdowns), r.Uncontested, pct(r.Uncontested))
	fmt.Fprintf(&b, "Split pots: %d, odd chips: %d (%d dropped)\n", r.SplitPots, r.OddChips, r.DroppedChips)
	fmt.Fprintf(&b, "Average pot: %.1f bb\n", avgPot)
	if r.Restarts > 0 {
		fmt.Fprintf(&b, "Table restarts: %d\n", r.Restarts)
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Players"))
	b.WriteString("\n")
	b.WriteString(playerTable(r).Render())
	b.WriteString("\n")

	if positions := positionTable(r); positions != nil {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Positions (seats after the button)"))
		b.WriteString("\n")
		b.WriteString(positions.Render())
		b.WriteString("\n")
	}

	if r.Showdowns > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Winning hands at showdown"))
		b.WriteString("\n")
		for c := evaluator.RoyalFlush; c >= evaluator.HighCard; c-- {
			if n := r.WinningHands[c]; n > 0 {
				fmt.Fprintf(&b, "%-16s %d\n", c, n)
			}
		}
	}

	return b.String()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func playerTable(r *statistics.Report) *table.Table {
	t := newTable("player", "hands", "net", "bb/hand", "95% CI", "std dev", "showdown", "no showdown", "won sd/nsd")
	for _, name := range r.PlayerNames() {
		s := r.Players[name]
		low, high := s.ConfidenceInterval95()
		perHand := func(v float64) string {
			if s.Hands == 0 {
				return "-"
			}
			return fmt.Sprintf("%.2f", v/float64(s.Hands))
		}
		t.Row(
			name,
			fmt.Sprint(s.Hands),
			chips(r.NetChips[name]),
			fmt.Sprintf("%.3f", s.Mean()),
			fmt.Sprintf("[%.2f, %.2f]", low, high),
			fmt.Sprintf("%.2f", s.StdDev()),
			perHand(s.ShowdownBB),
			perHand(s.NonShowdownBB),
			fmt.Sprintf("%d/%d", s.ShowdownWins, s.NonShowdownWins),
		)
	}
	return t
}

func positionTable(r *statistics.Report) *table.Table {
	var totals [game.MaxPlayers]statistics.PositionStats
	seen := false
	for _, s := range r.Players {
		for pos, ps := range s.PositionResults {
			totals[pos].Hands += ps.Hands
			totals[pos].SumBB += ps.SumBB
			seen = seen || ps.Hands > 0
		}
	}
	if !seen {
		return nil
	}

	t := newTable("position", "hands", "bb/hand")
	for pos, ps := range totals {
		if ps.Hands == 0 {
			continue
		}
		label := fmt.Sprint(pos)
		if pos == 0 {
			label = "0 (button)"
		}
		t.Row(label, fmt.Sprint(ps.Hands), fmt.Sprintf("%.3f", ps.Mean()))
	}
	return t
}

func chips(n int) string {
	s := fmt.Sprintf("%+d", n)
	switch {
	case n > 0:
		return winStyle.Render(s)
	case n < 0:
		return lossStyle.Render(s)
	default:
		return s
	}
}
