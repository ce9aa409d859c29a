package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

type EquityCmd struct {
	Hole      string `arg:"" help:"Hole cards, e.g. 'AcKd'"`
	Board     string `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Opponents int    `short:"o" default:"1" help:"Number of random opponents"`
	Samples   int    `short:"i" default:"100000" help:"Number of Monte Carlo samples"`
	Seed      *int64 `help:"Random seed for reproducible results"`
}

func (c *EquityCmd) Run(_ *Globals) error {
	args := []string{c.Hole}
	if c.Board != "" {
		args = append(args, c.Board)
	}
	cards, err := parseCardArgs(args)
	if err != nil {
		return err
	}
	if len(cards) < 2 {
		return fmt.Errorf("need 2 hole cards, got %d", len(cards))
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	start := time.Now()
	equity, err := evaluator.EstimateEquity(context.Background(), evaluator.EquityRequest{
		Hole:      cards[:2],
		Board:     cards[2:],
		Opponents: c.Opponents,
		Samples:   c.Samples,
		Seed:      seed,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s vs %d random %s\n", handStyle.Render(deck.FormatCards(cards[:2])), c.Opponents, plural(c.Opponents, "hand"))
	if len(cards) > 2 {
		fmt.Printf("%s %s\n", headerStyle.Render("board"), deck.FormatCards(cards[2:]))
	}
	fmt.Printf("equity %s\n", winStyle.Render(fmt.Sprintf("%.1f%%", equity*100)))
	fmt.Printf("\n%d samples in %v\n", c.Samples, time.Since(start).Truncate(time.Millisecond))
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
