package game

import (
	rand "math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/randutil"
)

// passive checks when it can, otherwise calls, otherwise folds.
var passive = PlayerFunc(func(legal []Action, _ Observation, _ Info) Action {
	for _, a := range []Action{Check, Call} {
		if slices.Contains(legal, a) {
			return a
		}
	}
	return Fold
})

var folder = PlayerFunc(func([]Action, Observation, Info) Action { return Fold })

// randomPlayer picks uniformly among the legal actions.
func randomPlayer(rng *rand.Rand) Player {
	return PlayerFunc(func(legal []Action, _ Observation, _ Info) Action {
		return legal[rng.IntN(len(legal))]
	})
}

// stacked deals the given cards first on every hand.
func stacked(t *testing.T, cards string) Option {
	t.Helper()
	top := deck.MustParseCards(cards)
	return WithDeckFunc(func(*rand.Rand) *deck.Deck {
		d, err := deck.NewStacked(top...)
		require.NoError(t, err)
		return d
	})
}

// newTestGame builds a 1000/5/10 table with the given players and a fixed seed.
func newTestGame(t *testing.T, players []Player, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRNG(randutil.New(42))}, opts...)
	g, err := New(1000, 5, 10, opts...)
	require.NoError(t, err)
	for i, p := range players {
		_, err := g.RegisterPlayer(string(rune('a'+i)), p)
		require.NoError(t, err)
	}
	return g
}

func repeat(p Player, n int) []Player {
	players := make([]Player, n)
	for i := range players {
		players[i] = p
	}
	return players
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
