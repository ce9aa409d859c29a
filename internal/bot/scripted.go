package bot

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/game"
)

// ScriptedBot plays a fixed sequence of actions. Once the script runs out,
// or a scripted action is not legal, it checks if it can and folds otherwise.
type ScriptedBot struct {
	script []game.Action
	next   int
	logger *log.Logger
}

// NewScriptedBot creates a bot that plays the given actions in order.
func NewScriptedBot(logger *log.Logger, script ...game.Action) *ScriptedBot {
	return &ScriptedBot{script: script, logger: logger.WithPrefix("scripted")}
}

// ParseScript parses action names such as "call" or "raise".
func ParseScript(names []string) ([]game.Action, error) {
	script := make([]game.Action, 0, len(names))
	for _, name := range names {
		a, err := game.ParseAction(name)
		if err != nil {
			return nil, err
		}
		if a.Forced() {
			return nil, fmt.Errorf("%s is posted by the dealer and cannot be scripted", strings.ToLower(name))
		}
		script = append(script, a)
	}
	return script, nil
}

func (s *ScriptedBot) Decide(legal []game.Action, _ game.Observation, info game.Info) game.Action {
	if s.next >= len(s.script) {
		return prefer(legal, game.Check, game.Fold)
	}

	a := s.script[s.next]
	s.next++
	if !has(legal, a) {
		s.logger.Warn("Scripted action not legal", "seat", info.Seat, "action", a, "legal", legal)
		return prefer(legal, game.Check, game.Fold)
	}
	return a
}

// Remaining returns the number of unplayed scripted actions.
func (s *ScriptedBot) Remaining() int {
	return len(s.script) - s.next
}
