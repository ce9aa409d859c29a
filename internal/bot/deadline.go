package bot

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/game"
)

// Deadline bounds how long a player may think. When the wrapped player has
// not answered within the timeout, Deadline checks if that is legal and
// folds otherwise. A late answer is discarded, and until the wrapped player
// returns every further turn gets the same substitute without asking it.
type Deadline struct {
	player  game.Player
	timeout time.Duration
	clock   quartz.Clock
	logger  *log.Logger

	// busy holds a token while the wrapped player is deciding.
	busy chan struct{}
}

// NewDeadline wraps player with a decision timeout measured on clock.
func NewDeadline(player game.Player, timeout time.Duration, clock quartz.Clock, logger *log.Logger) *Deadline {
	return &Deadline{
		player:  player,
		timeout: timeout,
		clock:   clock,
		logger:  logger.WithPrefix("deadline"),
		busy:    make(chan struct{}, 1),
	}
}

func (d *Deadline) Decide(legal []game.Action, obs game.Observation, info game.Info) game.Action {
	if d.timeout <= 0 {
		return d.player.Decide(legal, obs, info)
	}

	select {
	case d.busy <- struct{}{}:
	default:
		a := prefer(legal, game.Check, game.Fold)
		d.logger.Warn("Previous decision still running", "seat", info.Seat, "hand", info.HandID, "action", a)
		return a
	}

	timeoutFired := make(chan struct{})
	timer := d.clock.AfterFunc(d.timeout, func() {
		close(timeoutFired)
	})
	defer timer.Stop()

	decision := make(chan game.Action, 1)
	go func() {
		defer func() { <-d.busy }()
		decision <- d.player.Decide(legal, obs, info)
	}()

	select {
	case a := <-decision:
		return a
	case <-timeoutFired:
		a := prefer(legal, game.Check, game.Fold)
		d.logger.Warn("Decision timeout", "seat", info.Seat, "hand", info.HandID, "timeout", d.timeout, "action", a)
		return a
	}
}
