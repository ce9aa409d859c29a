package main

import (
	"fmt"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

type EvalCmd struct {
	Cards []string `arg:"" help:"Five to seven cards, e.g. 'AhKhQhJhTh 2c'"`
}

func (c *EvalCmd) Run(_ *Globals) error {
	cards, err := parseCardArgs(c.Cards)
	if err != nil {
		return err
	}

	res, err := evaluator.Evaluate(cards)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", headerStyle.Render(res.Category.String()))
	fmt.Printf("%s\n", handStyle.Render(deck.FormatCards(res.Cards)))
	fmt.Printf("score %.6f\n", res.Score)
	return nil
}

// parseCardArgs parses every argument as a card list and rejects
// duplicates.
func parseCardArgs(args []string) ([]deck.Card, error) {
	var cards []deck.Card
	for _, arg := range args {
		parsed, err := deck.ParseCards(arg)
		if err != nil {
			return nil, err
		}
		cards = append(cards, parsed...)
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if seen[card] {
			return nil, fmt.Errorf("duplicate card found: %s", card)
		}
		seen[card] = true
	}
	return cards, nil
}
