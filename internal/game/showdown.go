package game

import (
	"slices"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

// HandResult summarises a finished hand.
type HandResult struct {
	HandID     string
	HandNumber int
	Dealer     int
	Pot        int
	Winners    []int
	// DealtIn lists the seats that were dealt cards.
	DealtIn []int
	// Payouts and Committed are indexed by seat.
	Payouts   []int
	Committed []int
	// OddChips is the remainder of a split pot. It went to the first winner
	// clockwise from the dealer unless OddChipsDropped is set.
	OddChips        int
	OddChipsDropped bool
	Uncontested     bool
	Community       []deck.Card
	// Hands holds the evaluated hand of every seat that reached showdown.
	Hands map[int]evaluator.Result
}

// Net returns the chips a seat won or lost in the hand.
func (r *HandResult) Net(seat int) int {
	if seat < 0 || seat >= len(r.Payouts) {
		return 0
	}
	return r.Payouts[seat] - r.Committed[seat]
}

// IsSplit reports whether the pot was shared.
func (r *HandResult) IsSplit() bool {
	return len(r.Winners) > 1
}

// endHand closes the pots, pays the winners and moves the button.
func (g *Game) endHand() {
	g.closePots()
	g.logger.Info("Hand over", "hand", g.handNumber, "pot", g.communityPot, "board", g.community)

	result := g.showdown()

	g.round = Showdown
	g.current = -1
	g.inProgress = false
	g.lastResult = result
	g.dealer = g.nextFundedSeat(g.dealer)

	g.logger.Debug("Dealer moved", "seat", g.dealer)
}

// showdown pays the community pot to the best hand among active seats.
func (g *Game) showdown() *HandResult {
	pot := g.communityPot
	result := &HandResult{
		HandID:     g.handID,
		HandNumber: g.handNumber,
		Dealer:     g.dealer,
		Pot:        pot,
		Payouts:    make([]int, len(g.seats)),
		Committed:  slices.Clone(g.committed),
		Community:  slices.Clone(g.community),
		Hands:      map[int]evaluator.Result{},
	}

	for i, st := range g.seats {
		if len(st.hole) > 0 {
			result.DealtIn = append(result.DealtIn, i)
		}
	}

	contenders := g.clockwiseFromDealer(func(i int) bool { return g.active[i] })
	if len(contenders) == 1 {
		result.Uncontested = true
		result.Winners = contenders
	} else {
		result.Winners = g.bestHands(contenders, result.Hands)
	}

	share := pot / len(result.Winners)
	rem := pot % len(result.Winners)
	for _, w := range result.Winners {
		result.Payouts[w] = share
	}
	if rem > 0 {
		result.OddChips = rem
		switch g.cfg.oddChip {
		case OddChipDrop:
			result.OddChipsDropped = true
			g.dropped += rem
			g.logger.Warn("Odd chips dropped", "chips", rem, "winners", result.Winners)
		default:
			result.Payouts[result.Winners[0]] += rem
		}
	}

	for seat, amount := range result.Payouts {
		if amount == 0 {
			continue
		}
		g.seats[seat].bankroll += amount
		g.logger.Info("Player wins",
			"seat", seat,
			"name", g.seats[seat].name,
			"amount", amount,
			"bankroll", g.seats[seat].bankroll,
		)
	}
	g.communityPot = 0

	return result
}

// bestHands evaluates each contender and returns the seats holding the best
// score, in the order given.
func (g *Game) bestHands(contenders []int, hands map[int]evaluator.Result) []int {
	var winners []int
	var best evaluator.Result
	for _, seat := range contenders {
		cards := append(slices.Clone(g.seats[seat].hole), g.community...)
		res, err := evaluator.Evaluate(cards)
		if err != nil {
			// Only reachable if the hand ended early with several seats
			// still in, which nextPlayer never does.
			g.logger.Error("Cannot evaluate hand, splitting pot", "seat", seat, "cards", cards, "err", err)
			return contenders
		}
		hands[seat] = res
		g.logger.Info("Showdown", "seat", seat, "hole", g.seats[seat].hole, "hand", res.Category, "cards", res.Cards)

		switch c := evaluator.Compare(res, best); {
		case winners == nil || c > 0:
			winners = []int{seat}
			best = res
		case c == 0:
			winners = append(winners, seat)
		}
	}
	return winners
}

// clockwiseFromDealer lists the seats matching keep, starting with the seat
// after the dealer and ending with the dealer.
func (g *Game) clockwiseFromDealer(keep func(int) bool) []int {
	n := len(g.seats)
	var seats []int
	for i := 1; i <= n; i++ {
		idx := (g.dealer + i) % n
		if keep(idx) {
			seats = append(seats, idx)
		}
	}
	return seats
}
