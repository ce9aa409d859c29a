package game

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/randutil"
)

func TestPlayHandReplacesIllegalDecision(t *testing.T) {
	t.Parallel()

	alwaysCheck := PlayerFunc(func([]Action, Observation, Info) Action { return Check })
	g := newTestGame(t, []Player{alwaysCheck, passive})

	result, err := g.PlayHand()
	require.NoError(t, err)

	// The dealer faces the big blind, so Check is replaced with Fold.
	assert.True(t, result.Uncontested)
	assert.Equal(t, []int{1}, result.Winners)
	require.Len(t, g.Warnings(), 1)
	assert.Equal(t, Check, g.Warnings()[0].Action)
	assert.Equal(t, []Action{SmallBlind, Fold}, g.ActionHistory(0))
}

func TestPlayHandPassesDecisionContext(t *testing.T) {
	t.Parallel()

	var infos []Info
	var observations []Observation
	recorder := PlayerFunc(func(legal []Action, obs Observation, info Info) Action {
		infos = append(infos, info)
		observations = append(observations, obs)
		return Fold
	})

	g := newTestGame(t, []Player{recorder, passive, passive}, WithHandIDFunc(func() string { return "hand-1" }))
	_, err := g.PlayHand()
	require.NoError(t, err)

	require.Len(t, infos, 1)
	assert.Equal(t, Info{HandID: "hand-1", HandNumber: 1, Seat: 0, ToCall: 10, RaiseAmount: 40}, infos[0])
	assert.Equal(t, "hand-1", observations[0].HandID)
	assert.Equal(t, []Action{Fold, Call, Raise}, observations[0].Legal)
	assert.Len(t, observations[0].Hole, 2)
}

func TestPlayHandStalls(t *testing.T) {
	t.Parallel()

	g := newTestGame(t, repeat(passive, 2), WithMaxDecisions(1))
	_, err := g.PlayHand()
	assert.ErrorIs(t, err, ErrHandStalled)
}

func TestPlayHandDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	play := func() []int {
		rng := randutil.New(99)
		g := newTestGame(t, repeat(randomPlayer(rng), 4), WithRNG(randutil.New(3)))
		for range 20 {
			if _, err := g.PlayHand(); err != nil {
				require.ErrorIs(t, err, ErrGameOver)
				break
			}
		}
		return []int{g.Bankroll(0), g.Bankroll(1), g.Bankroll(2), g.Bankroll(3)}
	}

	assert.Equal(t, play(), play())
}

func TestChipConservationAcrossHands(t *testing.T) {
	t.Parallel()

	rng := randutil.New(11)
	g := newTestGame(t, repeat(randomPlayer(rng), 6))

	hands := 0
	for range 300 {
		result, err := g.PlayHand()
		if err != nil {
			require.ErrorIs(t, err, ErrGameOver)
			break
		}
		hands++
		require.Equal(t, 6000, g.TotalChips())
		require.Equal(t, result.Pot, sum(result.Payouts))
		require.Equal(t, result.Pot, sum(result.Committed))
		for _, w := range result.Winners {
			require.Positive(t, result.Payouts[w])
		}
	}
	assert.Positive(t, hands)
	assert.Empty(t, g.Warnings())
}

func TestDebugStateDump(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := newTestGame(t, repeat(passive, 2), WithLogger(logger))
	require.NoError(t, g.StartNewHand())
	g.LegalActions()

	out := buf.String()
	assert.Contains(t, out, "game:")
	assert.Contains(t, out, "player_pots")
	assert.Contains(t, out, "game.Observation")
}
