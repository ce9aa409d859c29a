// Package config loads table and simulation settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/game"
)

// Config represents a complete simulation configuration
type Config struct {
	LogLevel   string            `hcl:"log_level,optional"`
	Table      *TableConfig      `hcl:"table,block"`
	Players    []PlayerConfig    `hcl:"player,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
}

// TableConfig defines the stakes and rules of a table
type TableConfig struct {
	Name            string `hcl:"name,label"`
	InitialBankroll int    `hcl:"initial_bankroll,optional"`
	SmallBlind      int    `hcl:"small_blind,optional"`
	BigBlind        int    `hcl:"big_blind,optional"`
	RaiseMultiple   int    `hcl:"raise_multiple,optional"`
	OddChip         string `hcl:"odd_chip,optional"`
	StrictRaise     bool   `hcl:"strict_raise,optional"`
}

// PlayerConfig seats one bot at the table
type PlayerConfig struct {
	Name     string   `hcl:"name,label"`
	Strategy string   `hcl:"strategy"`
	Script   []string `hcl:"script,optional"`
	Samples  int      `hcl:"samples,optional"`
}

// SimulationConfig controls how many hands are played and how
type SimulationConfig struct {
	Hands           int    `hcl:"hands,optional"`
	Tables          int    `hcl:"tables,optional"`
	Seed            int64  `hcl:"seed,optional"`
	Workers         int    `hcl:"workers,optional"`
	DecisionTimeout string `hcl:"decision_timeout,optional"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	c := &Config{
		Players: []PlayerConfig{
			{Name: "alice", Strategy: bot.StrategyRandom},
			{Name: "bob", Strategy: bot.StrategyCall},
			{Name: "carol", Strategy: bot.StrategyTAG},
			{Name: "dave", Strategy: bot.StrategyManiac},
		},
	}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields the
// default configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse parses configuration from HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var c Config
	if diags := gohcl.DecodeBody(file.Body, nil, &c); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Table == nil {
		c.Table = &TableConfig{Name: "main"}
	}
	if c.Table.InitialBankroll == 0 {
		c.Table.InitialBankroll = 1000
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = 10
	}
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = c.Table.BigBlind / 2
	}
	if c.Table.RaiseMultiple == 0 {
		c.Table.RaiseMultiple = game.DefaultRaiseMultiple
	}
	if c.Table.OddChip == "" {
		c.Table.OddChip = game.OddChipFirstWinner.String()
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationConfig{}
	}
	if c.Simulation.Hands == 0 {
		c.Simulation.Hands = 100
	}
	if c.Simulation.Tables == 0 {
		c.Simulation.Tables = 1
	}
	if c.Simulation.Seed == 0 {
		c.Simulation.Seed = 1
	}

	for i := range c.Players {
		c.Players[i].Strategy = strings.ToLower(c.Players[i].Strategy)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	t := c.Table
	if t.InitialBankroll <= 0 {
		return fmt.Errorf("table %s: initial bankroll must be positive", t.Name)
	}
	if t.SmallBlind <= 0 {
		return fmt.Errorf("table %s: small blind must be positive", t.Name)
	}
	if t.BigBlind <= t.SmallBlind {
		return fmt.Errorf("table %s: big blind must be greater than small blind", t.Name)
	}
	if t.RaiseMultiple <= 0 {
		return fmt.Errorf("table %s: raise multiple must be positive", t.Name)
	}
	if _, err := game.ParseOddChipPolicy(t.OddChip); err != nil {
		return fmt.Errorf("table %s: %w", t.Name, err)
	}

	if n := len(c.Players); n < game.MinPlayers || n > game.MaxPlayers {
		return fmt.Errorf("%w: %d players configured", game.ErrInvalidPlayerCount, n)
	}
	seen := map[string]bool{}
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		seen[p.Name] = true

		if !bot.IsKnown(p.Strategy) {
			return fmt.Errorf("player %s: invalid strategy %s, expected one of %s",
				p.Name, p.Strategy, strings.Join(bot.Strategies(), ", "))
		}
		if p.Strategy == bot.StrategyScripted {
			if len(p.Script) == 0 {
				return fmt.Errorf("player %s: scripted strategy needs a script", p.Name)
			}
			if _, err := bot.ParseScript(p.Script); err != nil {
				return fmt.Errorf("player %s: %w", p.Name, err)
			}
		}
	}

	s := c.Simulation
	if s.Hands < 0 || s.Tables < 0 || s.Workers < 0 {
		return errors.New("simulation: hands, tables and workers must not be negative")
	}
	if s.DecisionTimeout != "" {
		if d, err := time.ParseDuration(s.DecisionTimeout); err != nil || d < 0 {
			return fmt.Errorf("simulation: invalid decision timeout %q", s.DecisionTimeout)
		}
	}

	return nil
}

// OddChipPolicy returns the parsed odd chip policy of the table.
func (c *Config) OddChipPolicy() game.OddChipPolicy {
	p, _ := game.ParseOddChipPolicy(c.Table.OddChip)
	return p
}

// DecisionTimeout returns the per-decision timeout, zero when unset.
func (c *Config) DecisionTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Simulation.DecisionTimeout)
	return d
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
