// Package evaluator scores 5 to 7 card poker hands.
//
// Evaluate is a pure function: it keeps no state and is safe to call
// concurrently. Higher scores are stronger hands; see Result for the
// encoding.
package evaluator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lox/holdem-engine/internal/deck"
)

const (
	// MinCards is the smallest hand Evaluate accepts.
	MinCards = 5
	// MaxCards is the largest hand Evaluate accepts (2 hole + 5 board).
	MaxCards = 7
)

// ErrInvalidHand is returned for hands with too few or too many cards,
// duplicates, or cards outside the standard deck.
var ErrInvalidHand = errors.New("invalid hand")

// Evaluate returns the category, score and best five cards of a hand.
//
// Categories are checked in descending strength and the first match wins.
// When more cards qualify than five, the highest ranking subset is used:
// among three pairs the two highest pairs make Two Pair and the best
// remaining card (which may come from the third pair) is the kicker; with
// two sets of trips the higher set is the trips of the Full House and the
// lower set supplies the pair.
func Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) < MinCards || len(cards) > MaxCards {
		return Result{}, fmt.Errorf("%w: need %d to %d cards, got %d", ErrInvalidHand, MinCards, MaxCards, len(cards))
	}
	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return Result{}, fmt.Errorf("%w: unknown card %v", ErrInvalidHand, c)
		}
		if seen[c] {
			return Result{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, c)
		}
		seen[c] = true
	}

	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, func(a, b deck.Card) int {
		if a.Rank != b.Rank {
			return int(b.Rank - a.Rank)
		}
		return int(a.Suit - b.Suit)
	})

	h := newHandInfo(sorted)

	for _, check := range []func(*handInfo) (Result, bool){
		(*handInfo).straightFlush,
		(*handInfo).fourOfAKind,
		(*handInfo).fullHouse,
		(*handInfo).flush,
		(*handInfo).straight,
		(*handInfo).threeOfAKind,
		(*handInfo).twoPair,
		(*handInfo).onePair,
	} {
		if r, ok := check(h); ok {
			return r, nil
		}
	}
	return h.highCard(), nil
}

// MustEvaluate is like Evaluate but panics on invalid input.
func MustEvaluate(cards []deck.Card) Result {
	r, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}
	return r
}

// rankGroup is every card of one rank in the hand.
type rankGroup struct {
	rank  deck.Rank
	cards []deck.Card
}

type handInfo struct {
	sorted []deck.Card    // rank descending
	groups []rankGroup    // rank descending
	suits  [4][]deck.Card // per suit, rank descending
}

func newHandInfo(sorted []deck.Card) *handInfo {
	h := &handInfo{sorted: sorted}
	for _, c := range sorted {
		if n := len(h.groups); n > 0 && h.groups[n-1].rank == c.Rank {
			h.groups[n-1].cards = append(h.groups[n-1].cards, c)
		} else {
			h.groups = append(h.groups, rankGroup{rank: c.Rank, cards: []deck.Card{c}})
		}
		h.suits[c.Suit] = append(h.suits[c.Suit], c)
	}
	return h
}

// groupsOf returns the groups with at least n cards, highest rank first.
func (h *handInfo) groupsOf(n int) []rankGroup {
	var out []rankGroup
	for _, g := range h.groups {
		if len(g.cards) >= n {
			out = append(out, g)
		}
	}
	return out
}

// kickers returns the n highest cards whose rank is not excluded.
func (h *handInfo) kickers(n int, exclude ...deck.Rank) []deck.Card {
	out := make([]deck.Card, 0, n)
	for _, c := range h.sorted {
		if len(out) == n {
			break
		}
		if slices.Contains(exclude, c.Rank) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// findStraight returns the five cards of the highest straight among cards
// (sorted rank descending), or nil. The wheel is returned as 5-4-3-2-A.
func findStraight(cards []deck.Card) []deck.Card {
	var distinct []deck.Card
	for _, c := range cards {
		if len(distinct) == 0 || distinct[len(distinct)-1].Rank != c.Rank {
			distinct = append(distinct, c)
		}
	}

	run := 1
	for i := 1; i < len(distinct); i++ {
		if distinct[i-1].Rank-distinct[i].Rank == 1 {
			run++
		} else {
			run = 1
		}
		if run == 5 {
			return slices.Clone(distinct[i-4 : i+1])
		}
	}

	if len(distinct) >= 5 && distinct[0].Rank == deck.Ace {
		n := len(distinct)
		low := distinct[n-4:]
		if low[0].Rank == deck.Five && low[3].Rank == deck.Two {
			return append(slices.Clone(low), distinct[0])
		}
	}
	return nil
}

func ranksOf(cards []deck.Card) []deck.Rank {
	out := make([]deck.Rank, len(cards))
	for i, c := range cards {
		out[i] = c.Rank
	}
	return out
}

func newResult(c Category, cards []deck.Card, tieBreak []deck.Rank) Result {
	return Result{
		Category: c,
		Score:    score(c, tieBreak),
		Cards:    cards,
		TieBreak: tieBreak,
	}
}

func (h *handInfo) straightFlush() (Result, bool) {
	var best []deck.Card
	for _, suited := range h.suits {
		if len(suited) < 5 {
			continue
		}
		if s := findStraight(suited); s != nil && (best == nil || s[0].Rank > best[0].Rank) {
			best = s
		}
	}
	if best == nil {
		return Result{}, false
	}
	top := best[0].Rank
	if top == deck.Ace {
		return newResult(RoyalFlush, best, []deck.Rank{top}), true
	}
	return newResult(StraightFlush, best, []deck.Rank{top}), true
}

func (h *handInfo) fourOfAKind() (Result, bool) {
	quads := h.groupsOf(4)
	if len(quads) == 0 {
		return Result{}, false
	}
	q := quads[0]
	kicker := h.kickers(1, q.rank)
	cards := append(slices.Clone(q.cards[:4]), kicker...)
	return newResult(FourOfAKind, cards, []deck.Rank{q.rank, kicker[0].Rank}), true
}

func (h *handInfo) fullHouse() (Result, bool) {
	trips := h.groupsOf(3)
	if len(trips) == 0 {
		return Result{}, false
	}
	t := trips[0]
	for _, g := range h.groupsOf(2) {
		if g.rank == t.rank {
			continue
		}
		cards := append(slices.Clone(t.cards[:3]), g.cards[:2]...)
		return newResult(FullHouse, cards, []deck.Rank{t.rank, g.rank}), true
	}
	return Result{}, false
}

func (h *handInfo) flush() (Result, bool) {
	var best []deck.Card
	for _, suited := range h.suits {
		if len(suited) < 5 {
			continue
		}
		top := suited[:5]
		if best == nil || slices.Compare(ranksOf(top), ranksOf(best)) > 0 {
			best = top
		}
	}
	if best == nil {
		return Result{}, false
	}
	cards := slices.Clone(best)
	return newResult(Flush, cards, ranksOf(cards)), true
}

func (h *handInfo) straight() (Result, bool) {
	s := findStraight(h.sorted)
	if s == nil {
		return Result{}, false
	}
	return newResult(Straight, s, []deck.Rank{s[0].Rank}), true
}

func (h *handInfo) threeOfAKind() (Result, bool) {
	trips := h.groupsOf(3)
	if len(trips) == 0 {
		return Result{}, false
	}
	t := trips[0]
	kickers := h.kickers(2, t.rank)
	cards := append(slices.Clone(t.cards[:3]), kickers...)
	return newResult(ThreeOfAKind, cards, append([]deck.Rank{t.rank}, ranksOf(kickers)...)), true
}

func (h *handInfo) twoPair() (Result, bool) {
	pairs := h.groupsOf(2)
	if len(pairs) < 2 {
		return Result{}, false
	}
	hi, lo := pairs[0], pairs[1]
	kicker := h.kickers(1, hi.rank, lo.rank)
	cards := append(slices.Clone(hi.cards[:2]), lo.cards[:2]...)
	cards = append(cards, kicker...)
	return newResult(TwoPair, cards, []deck.Rank{hi.rank, lo.rank, kicker[0].Rank}), true
}

func (h *handInfo) onePair() (Result, bool) {
	pairs := h.groupsOf(2)
	if len(pairs) == 0 {
		return Result{}, false
	}
	p := pairs[0]
	kickers := h.kickers(3, p.rank)
	cards := append(slices.Clone(p.cards[:2]), kickers...)
	return newResult(OnePair, cards, append([]deck.Rank{p.rank}, ranksOf(kickers)...)), true
}

func (h *handInfo) highCard() Result {
	cards := slices.Clone(h.sorted[:5])
	return newResult(HighCard, cards, ranksOf(cards))
}
