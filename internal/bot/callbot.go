package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// CallBot checks or calls down, folding the river only to a large bet.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger.WithPrefix("callbot")}
}

func (c *CallBot) Decide(legal []game.Action, obs game.Observation, info game.Info) game.Action {
	// Large river bet relative to the pot
	if obs.Round == game.River && info.ToCall > 0 {
		if float64(info.ToCall) > 0.8*float64(obs.Pot()) {
			c.logger.Debug("Folding river to large bet", "seat", info.Seat, "to_call", info.ToCall, "pot", obs.Pot())
			return prefer(legal, game.Fold)
		}
	}

	return prefer(legal, game.Check, game.Call)
}
