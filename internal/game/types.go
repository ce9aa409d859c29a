package game

import (
	"fmt"
	"strings"
)

// Round is a betting round. Rounds only move forward within a hand.
type Round int

const (
	Preflop Round = iota
	Flop
	Turn
	River
	Showdown
)

func (r Round) String() string {
	switch r {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return fmt.Sprintf("round(%d)", int(r))
	}
}

// communityCards is the number of board cards dealt on entering a round.
func (r Round) communityCards() int {
	switch r {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

// Action is a player decision. SmallBlind and BigBlind are forced by the
// engine and never offered as legal actions.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	SmallBlind
	BigBlind
)

// VoluntaryActions are the actions a Player may choose from.
var VoluntaryActions = []Action{Fold, Check, Call, Raise}

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case SmallBlind:
		return "small_blind"
	case BigBlind:
		return "big_blind"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Forced reports whether the action is a blind posted by the engine.
func (a Action) Forced() bool {
	return a == SmallBlind || a == BigBlind
}

// ParseAction parses the lower-case name of an action.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold":
		return Fold, nil
	case "check":
		return Check, nil
	case "call":
		return Call, nil
	case "raise":
		return Raise, nil
	case "small_blind", "sb":
		return SmallBlind, nil
	case "big_blind", "bb":
		return BigBlind, nil
	default:
		return 0, fmt.Errorf("unknown action %q", s)
	}
}

// Outcome describes what an applied action did to the hand.
type Outcome int

const (
	// TurnAdvanced means betting continues in the same round.
	TurnAdvanced Outcome = iota
	// RoundAdvanced means the round closed and the next one opened.
	RoundAdvanced
	// HandEnded means the hand reached showdown and the pot was paid out.
	HandEnded
)

func (o Outcome) String() string {
	switch o {
	case TurnAdvanced:
		return "turn_advanced"
	case RoundAdvanced:
		return "round_advanced"
	case HandEnded:
		return "hand_ended"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// OddChipPolicy decides what happens to chips left over when a split pot
// does not divide evenly.
type OddChipPolicy int

const (
	// OddChipFirstWinner gives the remainder to the first tied winner
	// clockwise from the dealer.
	OddChipFirstWinner OddChipPolicy = iota
	// OddChipDrop discards the remainder.
	OddChipDrop
)

func (p OddChipPolicy) String() string {
	switch p {
	case OddChipFirstWinner:
		return "first_winner"
	case OddChipDrop:
		return "drop"
	default:
		return fmt.Sprintf("odd_chip(%d)", int(p))
	}
}

// ParseOddChipPolicy parses "first_winner" or "drop".
func ParseOddChipPolicy(s string) (OddChipPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first_winner":
		return OddChipFirstWinner, nil
	case "drop":
		return OddChipDrop, nil
	default:
		return 0, fmt.Errorf("unknown odd chip policy %q", s)
	}
}
