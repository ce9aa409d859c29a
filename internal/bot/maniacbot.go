package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// ManiacBot is an extremely aggressive bot that raises whenever it can and
// rarely folds.
type ManiacBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewManiacBot creates a new ManiacBot instance
func NewManiacBot(rng *rand.Rand, logger *log.Logger) *ManiacBot {
	return &ManiacBot{rng: rng, logger: logger.WithPrefix("maniacbot")}
}

func (m *ManiacBot) Decide(legal []game.Action, _ game.Observation, _ game.Info) game.Action {
	if has(legal, game.Check) {
		// Maniacs prefer to bet
		if m.rng.Float64() < 0.85 && has(legal, game.Raise) {
			return game.Raise
		}
		return game.Check
	}

	// Facing a bet: 40% raise, 40% call, 20% fold
	r := m.rng.Float64()
	switch {
	case r < 0.4 && has(legal, game.Raise):
		return game.Raise
	case r < 0.8 && has(legal, game.Call):
		return game.Call
	default:
		return game.Fold
	}
}
