package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/statistics"
)

func TestParseCardArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected int
		hasError bool
	}{
		{name: "Concatenated", input: []string{"AhKhQhJhTh"}, expected: 5},
		{name: "Separate args", input: []string{"Ah", "Kh", "Qh", "Jh", "Th", "2c"}, expected: 6},
		{name: "Hole and board", input: []string{"AcKd", "Td 7s 8h"}, expected: 5},
		{name: "Duplicate card", input: []string{"AhAh"}, hasError: true},
		{name: "Invalid card", input: []string{"AcXy"}, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := parseCardArgs(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("expected error, got %v", cards)
				}
				return
			}
			require.NoError(t, err)
			assert.Len(t, cards, tt.expected)
		})
	}
}

func TestRenderReport(t *testing.T) {
	r := statistics.NewReport()
	names := []string{"alice", "bob"}
	r.AddHand(names, 10, &game.HandResult{
		Dealer:    0,
		Pot:       40,
		Winners:   []int{1},
		DealtIn:   []int{0, 1},
		Payouts:   []int{0, 40},
		Committed: []int{20, 20},
		Hands: map[int]evaluator.Result{
			0: {Category: evaluator.OnePair},
			1: {Category: evaluator.Flush},
		},
	})
	require.NoError(t, r.Validate())

	out := renderReport(r, 10)
	for _, want := range []string{"Hands played: 1", "alice", "bob", "+20", "-20", "Flush", "button"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	assert.Contains(t, out, "Average pot: 4.0 bb")
	assert.Contains(t, out, "won sd/nsd")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "hand", plural(1, "hand"))
	assert.Equal(t, "hands", plural(3, "hand"))
}
