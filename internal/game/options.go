package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/randutil"
)

const (
	// MinPlayers is the smallest table that can start a hand.
	MinPlayers = 2
	// MaxPlayers is the largest table.
	MaxPlayers = 8
	// DefaultRaiseMultiple is the raise size in big blinds on top of the current bet.
	DefaultRaiseMultiple = 3
	// DefaultMaxDecisions bounds the decisions PlayHand will request in one hand.
	DefaultMaxDecisions = 10_000
)

// Option configures a Game during creation.
type Option func(*config)

type config struct {
	logger        *log.Logger
	rng           *rand.Rand
	deckFunc      func(*rand.Rand) *deck.Deck
	handID        func() string
	oddChip       OddChipPolicy
	raiseMultiple int
	strictRaise   bool
	permissive    bool
	maxDecisions  int
}

func defaultConfig() *config {
	return &config{
		logger:        log.New(io.Discard),
		deckFunc:      deck.New,
		handID:        uuid.NewString,
		oddChip:       OddChipFirstWinner,
		raiseMultiple: DefaultRaiseMultiple,
		maxDecisions:  DefaultMaxDecisions,
	}
}

// WithLogger sets the logger. The game logs under the "game" prefix.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRNG sets the random source used to draw cards.
// Default is a time-seeded generator.
func WithRNG(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithDeckFunc replaces how a fresh deck is built for each hand. Tests use
// it with deck.NewStacked to deal exact cards.
func WithDeckFunc(fn func(*rand.Rand) *deck.Deck) Option {
	return func(c *config) {
		if fn != nil {
			c.deckFunc = fn
		}
	}
}

// WithHandIDFunc sets the generator for hand ids. Default is a random UUID.
func WithHandIDFunc(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.handID = fn
		}
	}
}

// WithOddChipPolicy sets how split pot remainders are handled.
func WithOddChipPolicy(p OddChipPolicy) Option {
	return func(c *config) { c.oddChip = p }
}

// WithRaiseMultiple sets the fixed raise size in big blinds.
func WithRaiseMultiple(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.raiseMultiple = n
		}
	}
}

// WithStrictRaise only offers Raise when the bankroll covers the full
// raise amount. By default any positive bankroll may raise (capped all-in).
func WithStrictRaise() Option {
	return func(c *config) { c.strictRaise = true }
}

// WithPermissiveActions makes ApplyAction log illegal actions and apply
// them anyway instead of rejecting them.
func WithPermissiveActions() Option {
	return func(c *config) { c.permissive = true }
}

// WithMaxDecisions bounds the number of decisions PlayHand requests per hand.
func WithMaxDecisions(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDecisions = n
		}
	}
}

func (c *config) ensureRNG() {
	if c.rng == nil {
		c.rng = randutil.NewTimeSeeded()
	}
}
