package statistics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/game"
)

// Report aggregates the hands played by a simulation, across tables.
type Report struct {
	Hands        int
	Showdowns    int
	Uncontested  int
	SplitPots    int
	OddChips     int
	DroppedChips int
	TotalPot     int
	Restarts     int // tables rebuilt after a game over

	// WinningHands counts the category of every winning hand at showdown.
	WinningHands [evaluator.RoyalFlush + 1]int

	// Players and NetChips are keyed by player name.
	Players  map[string]*Statistics
	NetChips map[string]int
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{
		Players:  map[string]*Statistics{},
		NetChips: map[string]int{},
	}
}

// AddHand records a finished hand. names maps seats to player names.
func (r *Report) AddHand(names []string, bigBlind int, res *game.HandResult) {
	r.Hands++
	r.TotalPot += res.Pot
	if res.Uncontested {
		r.Uncontested++
	} else {
		r.Showdowns++
		for _, w := range res.Winners {
			if h, ok := res.Hands[w]; ok {
				r.WinningHands[h.Category]++
			}
		}
	}
	if res.IsSplit() {
		r.SplitPots++
	}
	r.OddChips += res.OddChips
	if res.OddChipsDropped {
		r.DroppedChips += res.OddChips
	}

	seats := len(names)
	for _, seat := range res.DealtIn {
		name := names[seat]
		net := res.Net(seat)
		_, showed := res.Hands[seat]

		r.NetChips[name] += net
		r.player(name).Add(HandResult{
			NetBB:          float64(net) / float64(bigBlind),
			Position:       (seat - res.Dealer + seats) % seats,
			WentToShowdown: showed,
		})
	}
}

// Merge folds another report into r.
func (r *Report) Merge(other *Report) {
	r.Hands += other.Hands
	r.Showdowns += other.Showdowns
	r.Uncontested += other.Uncontested
	r.SplitPots += other.SplitPots
	r.OddChips += other.OddChips
	r.DroppedChips += other.DroppedChips
	r.TotalPot += other.TotalPot
	r.Restarts += other.Restarts
	for i, n := range other.WinningHands {
		r.WinningHands[i] += n
	}
	for name, s := range other.Players {
		r.player(name).Merge(s)
	}
	for name, n := range other.NetChips {
		r.NetChips[name] += n
	}
}

// PlayerNames returns the players in the report sorted by name.
func (r *Report) PlayerNames() []string {
	names := make([]string, 0, len(r.Players))
	for name := range r.Players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every chip is accounted for: the players' net
// results sum to minus the dropped odd chips.
func (r *Report) Validate() error {
	if r.Showdowns+r.Uncontested != r.Hands {
		return fmt.Errorf("showdowns (%d) and uncontested (%d) do not add up to %d hands",
			r.Showdowns, r.Uncontested, r.Hands)
	}

	net := 0
	for _, n := range r.NetChips {
		net += n
	}
	if net != -r.DroppedChips {
		return fmt.Errorf("net chips %d do not balance dropped chips %d", net, r.DroppedChips)
	}

	var errs []error
	for _, name := range r.PlayerNames() {
		if err := r.Players[name].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Report) player(name string) *Statistics {
	s, ok := r.Players[name]
	if !ok {
		s = &Statistics{}
		r.Players[name] = s
	}
	return s
}
