package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// RandBot is a simple bot that makes uniform random legal actions
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger.WithPrefix("randbot")}
}

func (r *RandBot) Decide(legal []game.Action, _ game.Observation, _ game.Info) game.Action {
	if len(legal) == 0 {
		return game.Fold
	}
	return legal[r.rng.IntN(len(legal))]
}
