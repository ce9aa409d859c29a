package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// FoldBot is a simple bot that always folds (or checks when possible)
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger.WithPrefix("foldbot")}
}

func (f *FoldBot) Decide(legal []game.Action, _ game.Observation, _ game.Info) game.Action {
	return prefer(legal, game.Check, game.Fold)
}
