package game

import (
	"github.com/lox/holdem-engine/internal/deck"
)

// Player supplies decisions for one seat. Decide must return one of the
// legal actions; the game does no more than log and substitute a fallback
// when it does not.
type Player interface {
	Decide(legal []Action, obs Observation, info Info) Action
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(legal []Action, obs Observation, info Info) Action

// Decide calls f.
func (f PlayerFunc) Decide(legal []Action, obs Observation, info Info) Action {
	return f(legal, obs, info)
}

// Info is per-decision context that is not part of the table state.
type Info struct {
	HandID     string
	HandNumber int
	Seat       int
	// ToCall is the chips a Call would put in right now.
	ToCall int
	// RaiseAmount is the chips a Raise would put in right now.
	RaiseAmount int
}

// seat is the game's record of a registered player. Only the Game mutates it.
type seat struct {
	index    int
	name     string
	bankroll int
	hole     []deck.Card
	actions  []Action
	player   Player
}
