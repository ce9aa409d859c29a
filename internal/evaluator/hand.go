package evaluator

import (
	"fmt"
	"math"

	"github.com/lox/holdem-engine/internal/deck"
)

// Category is the class of a poker hand, ordered from weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Result is the evaluation of a hand.
//
// Score orders hands: higher is stronger. The integer part is the Category,
// so category bands never overlap. The fractional part encodes the
// tie-break ranks as base-15 digits, most significant first:
//
//	score = category + r1/15 + r2/15² + ... + r5/15⁵
//
// Rank values are 2..14, so the fraction always stays in [0,1) and two
// scores compare exactly like their (category, tie-break ranks) tuples.
type Result struct {
	Category Category
	Score    float64
	// Cards are the best five cards, grouped by significance (the made
	// part first, then kickers in descending rank).
	Cards []deck.Card
	// TieBreak is the rank vector encoded into the fractional score.
	TieBreak []deck.Rank
}

// MaxScore is the score of a royal flush, the strongest possible hand.
var MaxScore = score(RoyalFlush, []deck.Rank{deck.Ace})

// String returns e.g. "Two Pair [Ks Kd 9h 9c Ah]"
func (r Result) String() string {
	return fmt.Sprintf("%s [%s]", r.Category, deck.FormatCards(r.Cards))
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 on a tie.
func Compare(a, b Result) int {
	switch {
	case a.Score > b.Score:
		return 1
	case a.Score < b.Score:
		return -1
	default:
		return 0
	}
}

// Beats reports whether r is strictly stronger than other.
func (r Result) Beats(other Result) bool {
	return Compare(r, other) > 0
}

func score(c Category, ranks []deck.Rank) float64 {
	s := float64(c)
	weight := 1.0
	for _, r := range ranks {
		weight /= 15
		s += float64(r) * weight
	}
	return s
}

// CategoryOf returns the category encoded in a score.
func CategoryOf(score float64) Category {
	return Category(math.Floor(score))
}
