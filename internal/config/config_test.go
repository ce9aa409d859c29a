package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/game"
)

const fullConfig = `
log_level = "debug"

table "main" {
  initial_bankroll = 500
  small_blind      = 1
  big_blind        = 2
  odd_chip         = "drop"
  strict_raise     = true
}

player "alice" { strategy = "random" }
player "bob"   { strategy = "CALL" }
player "carol" {
  strategy = "scripted"
  script   = ["call", "raise", "check"]
}

simulation {
  hands            = 200
  tables           = 4
  seed             = 42
  decision_timeout = "2s"
}
`

func TestParseFullConfig(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(fullConfig), "table.hcl")
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, c.Level())
	assert.Equal(t, "main", c.Table.Name)
	assert.Equal(t, 500, c.Table.InitialBankroll)
	assert.Equal(t, 1, c.Table.SmallBlind)
	assert.Equal(t, 2, c.Table.BigBlind)
	assert.Equal(t, game.DefaultRaiseMultiple, c.Table.RaiseMultiple)
	assert.True(t, c.Table.StrictRaise)
	assert.Equal(t, game.OddChipDrop, c.OddChipPolicy())

	require.Len(t, c.Players, 3)
	assert.Equal(t, "call", c.Players[1].Strategy)
	assert.Equal(t, []string{"call", "raise", "check"}, c.Players[2].Script)

	assert.Equal(t, 200, c.Simulation.Hands)
	assert.Equal(t, 4, c.Simulation.Tables)
	assert.Equal(t, int64(42), c.Simulation.Seed)
	assert.Equal(t, 2*time.Second, c.DecisionTimeout())
}

func TestParseAppliesDefaults(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(`
player "a" { strategy = "fold" }
player "b" { strategy = "equity" }
`), "min.hcl")
	require.NoError(t, err)

	assert.Equal(t, log.InfoLevel, c.Level())
	assert.Equal(t, 1000, c.Table.InitialBankroll)
	assert.Equal(t, 5, c.Table.SmallBlind)
	assert.Equal(t, 10, c.Table.BigBlind)
	assert.Equal(t, game.OddChipFirstWinner, c.OddChipPolicy())
	assert.Equal(t, 100, c.Simulation.Hands)
	assert.Equal(t, 1, c.Simulation.Tables)
	assert.Zero(t, c.DecisionTimeout())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "big blind not above small",
			src:  "table \"t\" {\n  small_blind = 10\n  big_blind = 10\n}\n" + twoPlayers,
			want: "big blind must be greater",
		},
		{
			name: "negative bankroll",
			src:  `table "t" { initial_bankroll = -5 }` + twoPlayers,
			want: "initial bankroll",
		},
		{
			name: "unknown odd chip policy",
			src:  `table "t" { odd_chip = "charity" }` + twoPlayers,
			want: "odd chip",
		},
		{
			name: "one player",
			src:  `player "a" { strategy = "call" }`,
			want: "invalid player count",
		},
		{
			name: "unknown strategy",
			src:  `player "a" { strategy = "call" }` + "\n" + `player "b" { strategy = "shark" }`,
			want: "invalid strategy",
		},
		{
			name: "duplicate names",
			src:  `player "a" { strategy = "call" }` + "\n" + `player "a" { strategy = "fold" }`,
			want: "duplicate",
		},
		{
			name: "scripted without script",
			src:  `player "a" { strategy = "call" }` + "\n" + `player "b" { strategy = "scripted" }`,
			want: "needs a script",
		},
		{
			name: "bad script",
			src:  `player "a" { strategy = "call" }` + "\n" + "player \"b\" {\n  strategy = \"scripted\"\n  script = [\"shove\"]\n}\n",
			want: "unknown action",
		},
		{
			name: "bad timeout",
			src:  twoPlayers + `simulation { decision_timeout = "soon" }`,
			want: "decision timeout",
		},
		{
			name: "bad log level",
			src:  `log_level = "loud"` + twoPlayers,
			want: "log level",
		},
		{
			name: "syntax error",
			src:  `table "t" {`,
			want: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

const twoPlayers = `
player "a" { strategy = "call" }
player "b" { strategy = "fold" }
`

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.NoError(t, c.Validate())

	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(fullConfig), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Players, 3)
}
