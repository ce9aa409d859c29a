package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPlayerCount is returned when a table is outside MinPlayers..MaxPlayers.
	ErrInvalidPlayerCount = errors.New("invalid player count")
	// ErrNoCurrentPlayer is returned when an operation needs a seat to act and there is none.
	ErrNoCurrentPlayer = errors.New("no current player")
	// ErrIllegalAction is returned for an action outside the legal set.
	ErrIllegalAction = errors.New("illegal action")
	// ErrHandInProgress is returned for operations only allowed between hands.
	ErrHandInProgress = errors.New("hand in progress")
	// ErrHandOver is returned when acting with no hand in progress.
	ErrHandOver = errors.New("no hand in progress")
	// ErrGameOver is returned once fewer than two seats have chips.
	ErrGameOver = errors.New("game over")
	// ErrHandStalled is returned when a hand exceeds the decision limit.
	ErrHandStalled = errors.New("hand stalled")
)

// InvalidPlayerCountError reports a table size outside the allowed range.
type InvalidPlayerCountError struct {
	Count int
}

func (e *InvalidPlayerCountError) Error() string {
	return fmt.Sprintf("%s: %d players, need %d to %d", ErrInvalidPlayerCount, e.Count, MinPlayers, MaxPlayers)
}

func (e *InvalidPlayerCountError) Unwrap() error { return ErrInvalidPlayerCount }

// IllegalActionWarning records an action that was not in the legal set when
// it was submitted. It is an error value so strict callers can reject it,
// and it is kept in Game.Warnings for permissive ones.
type IllegalActionWarning struct {
	HandID string
	Round  Round
	Seat   int
	Action Action
	Legal  []Action
}

func (w *IllegalActionWarning) Error() string {
	return fmt.Sprintf("%s: seat %d chose %s in %s, legal %v", ErrIllegalAction, w.Seat, w.Action, w.Round, w.Legal)
}

func (w *IllegalActionWarning) Unwrap() error { return ErrIllegalAction }
