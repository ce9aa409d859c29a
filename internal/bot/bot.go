// Package bot provides automated players for the game engine.
package bot

import (
	"slices"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/game"
)

// HandStrength represents the relative strength of a hand
type HandStrength int

const (
	VeryWeak HandStrength = iota
	Weak
	Medium
	Strong
	VeryStrong
)

// String returns the string representation of hand strength
func (hs HandStrength) String() string {
	switch hs {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return "unknown"
	}
}

// preflopStrength buckets hole cards by starting hand percentile.
func preflopStrength(hole []deck.Card) HandStrength {
	percentile := deck.StartingHandPercentile(hole)

	switch {
	case percentile >= 0.85: // Top 15% (premium hands)
		return VeryStrong
	case percentile >= 0.65: // Top 35%
		return Strong
	case percentile >= 0.40: // Top 60% (playable hands)
		return Medium
	case percentile >= 0.20:
		return Weak
	default:
		return VeryWeak
	}
}

// equityStrength maps equity against the field to hand strength categories
func equityStrength(equity float64) HandStrength {
	switch {
	case equity >= 0.80:
		return VeryStrong
	case equity >= 0.65:
		return Strong
	case equity >= 0.45:
		return Medium
	case equity >= 0.25:
		return Weak
	default:
		return VeryWeak
	}
}

// prefer returns the first of want that is legal, or the first legal
// action (always Fold) when none are.
func prefer(legal []game.Action, want ...game.Action) game.Action {
	for _, a := range want {
		if slices.Contains(legal, a) {
			return a
		}
	}
	if len(legal) > 0 {
		return legal[0]
	}
	return game.Fold
}

func has(legal []game.Action, a game.Action) bool {
	return slices.Contains(legal, a)
}
