package game

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

// Observation is a read-only view of the table from the acting seat's
// position. It never exposes other seats' hole cards.
type Observation struct {
	HandID       string
	HandNumber   int
	Round        Round
	Dealer       int
	Seat         int
	SmallBlind   int
	BigBlind     int
	Community    []deck.Card
	RoundPot     int
	CommunityPot int
	MinCall      int
	Seats        []SeatView
	Legal        []Action

	// Hole are the acting seat's cards. Hand is their evaluation once at
	// least five cards are known, nil before the flop.
	Hole []deck.Card
	Hand *evaluator.Result
}

// SeatView is the public state of one seat.
type SeatView struct {
	Seat         int
	Name         string
	Bankroll     int
	Active       bool
	Contribution int
	Actions      []Action
}

// Pot returns all chips in the middle.
func (o Observation) Pot() int {
	return o.RoundPot + o.CommunityPot
}

// ToCall returns the chips the acting seat needs to match the round maximum.
func (o Observation) ToCall() int {
	if o.Seat < 0 || o.Seat >= len(o.Seats) {
		return 0
	}
	me := o.Seats[o.Seat]
	return min(max(o.MinCall-me.Contribution, 0), me.Bankroll)
}

// Opponents returns the number of other active seats.
func (o Observation) Opponents() int {
	n := 0
	for _, s := range o.Seats {
		if s.Active && s.Seat != o.Seat {
			n++
		}
	}
	return n
}

// Observe returns the current seat's view of the table.
func (g *Game) Observe() (Observation, error) {
	if !g.inProgress || g.current < 0 {
		return Observation{}, ErrNoCurrentPlayer
	}
	g.determineLegalMoves()
	return g.observation(), nil
}

func (g *Game) observation() Observation {
	obs := Observation{
		HandID:       g.handID,
		HandNumber:   g.handNumber,
		Round:        g.round,
		Dealer:       g.dealer,
		Seat:         g.current,
		SmallBlind:   g.smallBlind,
		BigBlind:     g.bigBlind,
		Community:    slices.Clone(g.community),
		RoundPot:     g.roundPot,
		CommunityPot: g.communityPot,
		MinCall:      g.minCall,
		Legal:        slices.Clone(g.legal),
		Seats:        make([]SeatView, len(g.seats)),
	}
	for i, s := range g.seats {
		obs.Seats[i] = SeatView{
			Seat:         i,
			Name:         s.name,
			Bankroll:     s.bankroll,
			Active:       g.active[i],
			Contribution: g.playerPots[i],
			Actions:      slices.Clone(s.actions),
		}
	}

	if g.current >= 0 {
		hole := g.seats[g.current].hole
		obs.Hole = slices.Clone(hole)
		if cards := append(slices.Clone(hole), g.community...); len(cards) >= evaluator.MinCards {
			if res, err := evaluator.Evaluate(cards); err == nil {
				obs.Hand = &res
			}
		}
	}
	return obs
}

func (g *Game) info() Info {
	info := Info{
		HandID:     g.handID,
		HandNumber: g.handNumber,
		Seat:       g.current,
	}
	if g.current >= 0 {
		info.ToCall = g.callAmount(g.current)
		info.RaiseAmount = min(g.fullRaise(), g.seats[g.current].bankroll)
	}
	return info
}

// dumpState logs the full table at debug level.
func (g *Game) dumpState() {
	if g.logger.GetLevel() > log.DebugLevel {
		return
	}
	g.logger.Debug("State",
		"seat", g.current,
		"dealer", g.dealer,
		"legal", g.legal,
		"active", g.active,
		"player_pots", g.playerPots,
		"round_pot", g.roundPot,
		"community_pot", g.communityPot,
		"min_call", g.minCall,
	)
	g.logger.Debug(litter.Sdump(g.observation()))
}
