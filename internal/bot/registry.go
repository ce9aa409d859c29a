package bot

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/randutil"
)

// Strategy names accepted by New.
const (
	StrategyRandom   = "random"
	StrategyCall     = "call"
	StrategyFold     = "fold"
	StrategyManiac   = "maniac"
	StrategyTAG      = "tag"
	StrategyEquity   = "equity"
	StrategyScripted = "scripted"
)

var strategies = []string{
	StrategyCall,
	StrategyEquity,
	StrategyFold,
	StrategyManiac,
	StrategyRandom,
	StrategyScripted,
	StrategyTAG,
}

// Strategies returns the known strategy names in sorted order.
func Strategies() []string {
	return slices.Clone(strategies)
}

// IsKnown reports whether name is a strategy New can build.
func IsKnown(name string) bool {
	return slices.Contains(strategies, strings.ToLower(name))
}

// Options configure a bot built by New.
type Options struct {
	RNG    *rand.Rand
	Logger *log.Logger
	// Script is the action list for the scripted strategy.
	Script []string
	// Samples is the Monte Carlo sample count for the equity strategy.
	Samples int
	// Timeout wraps the bot in a Deadline when positive.
	Timeout time.Duration
	Clock   quartz.Clock
}

// New builds the bot for a strategy name.
func New(strategy string, opts Options) (game.Player, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.RNG == nil {
		opts.RNG = randutil.NewTimeSeeded()
	}

	var p game.Player
	switch strings.ToLower(strategy) {
	case StrategyRandom:
		p = NewRandBot(opts.RNG, opts.Logger)
	case StrategyCall:
		p = NewCallBot(opts.Logger)
	case StrategyFold:
		p = NewFoldBot(opts.Logger)
	case StrategyManiac:
		p = NewManiacBot(opts.RNG, opts.Logger)
	case StrategyTAG:
		p = NewTAGBot(opts.RNG, opts.Logger)
	case StrategyEquity:
		p = NewEquityBot(opts.RNG, opts.Logger, opts.Samples)
	case StrategyScripted:
		script, err := ParseScript(opts.Script)
		if err != nil {
			return nil, fmt.Errorf("scripted bot: %w", err)
		}
		p = NewScriptedBot(opts.Logger, script...)
	default:
		return nil, fmt.Errorf("unknown strategy %q, expected one of %s", strategy, strings.Join(strategies, ", "))
	}

	if opts.Timeout > 0 {
		clock := opts.Clock
		if clock == nil {
			clock = quartz.NewReal()
		}
		p = NewDeadline(p, opts.Timeout, clock, opts.Logger)
	}
	return p, nil
}
