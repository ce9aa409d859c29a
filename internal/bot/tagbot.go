package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/game"
)

// TAGBot is a Tight Aggressive bot that plays premium hands aggressively
type TAGBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewTAGBot creates a new TAGBot instance
func NewTAGBot(rng *rand.Rand, logger *log.Logger) *TAGBot {
	return &TAGBot{rng: rng, logger: logger.WithPrefix("tagbot")}
}

func (t *TAGBot) Decide(legal []game.Action, obs game.Observation, info game.Info) game.Action {
	strength := t.strength(obs)
	t.logger.Debug("Decision", "seat", info.Seat, "round", obs.Round, "strength", strength, "to_call", info.ToCall)

	switch strength {
	case VeryStrong:
		return prefer(legal, game.Raise, game.Call, game.Check)
	case Strong:
		return prefer(legal, game.Check, game.Call)
	case Medium:
		// Cheap enough to continue
		if info.ToCall <= 3*obs.BigBlind {
			return prefer(legal, game.Check, game.Call)
		}
	}

	if has(legal, game.Check) {
		return game.Check
	}
	if t.rng.Float64() < 0.3 { // 30% call rate
		return prefer(legal, game.Call)
	}
	return game.Fold
}

// strength uses the starting hand chart preflop and the made hand after.
func (t *TAGBot) strength(obs game.Observation) HandStrength {
	if obs.Hand == nil {
		return preflopStrength(obs.Hole)
	}

	switch c := obs.Hand.Category; {
	case c >= evaluator.TwoPair:
		return VeryStrong
	case c == evaluator.OnePair:
		return Strong
	default:
		return VeryWeak
	}
}
