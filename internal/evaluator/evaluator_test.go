package evaluator

import (
	"context"
	"errors"
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/randutil"
)

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    string
		expected Category
		best     string
	}{
		{"royal flush", "AhThKhQhJh3s6h", RoyalFlush, "AhKhQhJhTh"},
		{"straight flush", "9s8s7s6s5s4h3h", StraightFlush, "9s8s7s6s5s"},
		{"steel wheel", "As2s3s4s5sKhKd", StraightFlush, "5s4s3s2sAs"},
		{"four of a kind", "AsAhAdAcKs2h3h", FourOfAKind, "AsAhAdAcKs"},
		{"full house", "AsAhAdKsKh2h3h", FullHouse, "AsAhAdKsKh"},
		{"full house from two trips", "9s9h9d5s5h5c2d", FullHouse, "9s9h9d5s5h"},
		{"flush", "AsKsQs8s6s4h3h", Flush, "AsKsQs8s6s"},
		{"flush beats straight", "9h8h7h2h3h6c5d", Flush, "9h8h7h3h2h"},
		{"straight", "AsKhQdJcTs9h8h", Straight, "AsKhQdJcTs"},
		{"wheel", "As2h3d4c5s9hKh", Straight, "5s4c3d2hAs"},
		{"three of a kind", "AsAhAdKs9c7h5h", ThreeOfAKind, "AsAhAdKs9c"},
		{"two pair", "AsAhKdKs9c7h5h", TwoPair, "AsAhKsKd9c"},
		{"three pairs keep best two", "AsAhKdKsQcQh5h", TwoPair, "AsAhKsKdQh"},
		{"one pair", "AsAhKdQs9c7h5h", OnePair, "AsAhKdQs9c"},
		{"high card", "AsKhQd9s7c5h3h", HighCard, "AsKhQd9s7c"},
		{"five card hand", "2s4h6d8cTs", HighCard, "Ts8c6d4h2s"},
		{"six card hand", "2s2h6d8cTs3c", OnePair, "2s2hTs8c6d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := Evaluate(deck.MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r.Category)
			assert.Equal(t, tt.expected, CategoryOf(r.Score))
			assert.Equal(t, deck.MustParseCards(tt.best), r.Cards)
		})
	}
}

func TestRoyalFlushScenario(t *testing.T) {
	t.Parallel()

	r, err := Evaluate(deck.MustParseCards("Ah Th Kh Qh Jh 3s 6h"))
	require.NoError(t, err)
	assert.Equal(t, RoyalFlush, r.Category)
	assert.Equal(t, MaxScore, r.Score)
	assert.ElementsMatch(t, deck.MustParseCards("Ah Th Kh Qh Jh"), r.Cards)
}

func TestRoyalFlushIsMaximum(t *testing.T) {
	t.Parallel()

	// every suit, with any two extra cards
	for _, suit := range deck.Suits {
		hand := []deck.Card{
			deck.NewCard(deck.Ten, suit), deck.NewCard(deck.Jack, suit), deck.NewCard(deck.Queen, suit),
			deck.NewCard(deck.King, suit), deck.NewCard(deck.Ace, suit),
		}
		extra := deck.New(randutil.New(int64(suit)))
		for len(hand) < 7 {
			c, _ := extra.Draw()
			if c.Suit != suit || c.Rank < deck.Ten {
				hand = append(hand, c)
			}
		}
		r := MustEvaluate(hand)
		assert.Equal(t, RoyalFlush, r.Category)
		assert.Equal(t, MaxScore, r.Score)
	}

	// nothing else reaches it
	rng := randutil.New(5)
	for range 2000 {
		r := MustEvaluate(deck.New(rng).DrawN(7))
		if r.Category != RoyalFlush {
			assert.Less(t, r.Score, MaxScore)
		}
	}
}

func TestEvaluateKickers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		better string
		worse  string
	}{
		{"higher pair", "KsKh9d7c3s", "QsQh9d7c3h"},
		{"pair kicker", "KsKhAd7c3s", "KdKcQd7d3h"},
		{"second kicker", "KsKhAd8c3s", "KdKcAc7d3h"},
		{"two pair bottom pair", "AsAh9d9c3s", "AdAc8d8c3h"},
		{"two pair kicker", "AsAh9d9cKs", "AdAc9h9sQh"},
		{"trips kicker", "7s7h7dAc2s", "7c7s7hKc2d"},
		{"full house trips first", "3s3h3d2c2s", "2d2h2cAcAs"},
		{"full house pair", "KsKhKdQcQs", "KcKhKdJcJs"},
		{"flush last card", "AsKsQs9s3s", "AhKhQh9h2h"},
		{"straight over wheel", "6s5h4d3c2s", "5d4h3s2cAh"},
		{"quads kicker", "9s9h9d9cAs", "9s9h9d9cKs"},
		{"high card", "AsQh9d7c3s", "AhQd9s7d2h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := MustEvaluate(deck.MustParseCards(tt.better))
			w := MustEvaluate(deck.MustParseCards(tt.worse))
			assert.Equal(t, b.Category, w.Category, "test hands should share a category")
			assert.Equal(t, 1, Compare(b, w))
			assert.Equal(t, -1, Compare(w, b))
			assert.True(t, b.Beats(w))
		})
	}
}

func TestEvaluateTies(t *testing.T) {
	t.Parallel()

	// board plays for both
	a := MustEvaluate(deck.MustParseCards("2c3d AsKsQsJsTs"))
	b := MustEvaluate(deck.MustParseCards("2h3h AsKsQsJsTs"))
	assert.Equal(t, 0, Compare(a, b))

	// suits never break ties
	c := MustEvaluate(deck.MustParseCards("AsAhKd9c7s"))
	d := MustEvaluate(deck.MustParseCards("AdAcKs9h7d"))
	assert.Equal(t, c.Score, d.Score)
}

func TestCategoryBandsAreMonotonic(t *testing.T) {
	t.Parallel()

	weakestOf := map[Category]string{
		OnePair:       "2s2h3d4c6s",
		TwoPair:       "3s3h2d2c4s",
		ThreeOfAKind:  "2s2h2d3c4s",
		Straight:      "5s4h3d2cAs",
		Flush:         "7s5s4s3s2s",
		FullHouse:     "2s2h2d3c3s",
		FourOfAKind:   "2s2h2d2c3s",
		StraightFlush: "5s4s3s2sAs",
		RoyalFlush:    "AsKsQsJsTs",
	}
	strongestOf := map[Category]string{
		HighCard:      "AsKhQdJc9s",
		OnePair:       "AsAhKdQcJs",
		TwoPair:       "AsAhKdKcQs",
		ThreeOfAKind:  "AsAhAdKcQs",
		Straight:      "AsKhQdJcTs",
		Flush:         "AsKsQsJs9s",
		FullHouse:     "AsAhAdKcKs",
		FourOfAKind:   "AsAhAdAcKs",
		StraightFlush: "KsQsJsTs9s",
	}

	for c := OnePair; c <= RoyalFlush; c++ {
		weak := MustEvaluate(deck.MustParseCards(weakestOf[c]))
		strong := MustEvaluate(deck.MustParseCards(strongestOf[c-1]))
		require.Equal(t, c, weak.Category)
		require.Equal(t, c-1, strong.Category)
		assert.Greater(t, weak.Score, strong.Score, "weakest %s should beat strongest %s", c, c-1)
	}
}

func TestEvaluateOrderInvariant(t *testing.T) {
	t.Parallel()

	rng := randutil.New(11)
	for range 500 {
		hand := deck.New(rng).DrawN(7)
		want := MustEvaluate(hand)

		shuffled := append([]deck.Card{}, hand...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := MustEvaluate(shuffled)

		assert.Equal(t, want.Score, got.Score)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Cards, got.Cards)
	}
}

func TestEvaluateInvalidHands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []deck.Card
	}{
		{"too few", deck.MustParseCards("AsKsQsJs")},
		{"too many", deck.MustParseCards("AsKsQsJsTs9s8s7s")},
		{"duplicate", deck.MustParseCards("AsAsQsJsTs")},
		{"empty", nil},
		{"bogus card", []deck.Card{{Rank: 1, Suit: deck.Spades}, {Rank: deck.Two}, {Rank: deck.Three}, {Rank: deck.Four}, {Rank: deck.Five}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Evaluate(tt.cards)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidHand))
		})
	}
}

// toOracle converts to the independent evaluator's card encoding:
// clubs=0 diamonds=1 hearts=2 spades=3, ace=1.
func toOracle(t *testing.T, c deck.Card) poker.Card {
	t.Helper()
	suit := map[deck.Suit]int{deck.Clubs: 0, deck.Diamonds: 1, deck.Hearts: 2, deck.Spades: 3}[c.Suit]
	rank := int(c.Rank)
	if c.Rank == deck.Ace {
		rank = 1
	}
	pc, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
	require.NoError(t, err)
	return pc
}

func TestEvaluateAgreesWithIndependentEvaluator(t *testing.T) {
	t.Parallel()

	rng := randutil.New(2024)
	oracle := func(cards []deck.Card) int16 {
		var hand [7]poker.Card
		for i, c := range cards {
			hand[i] = toOracle(t, c)
		}
		return poker.Eval7(&hand)
	}
	sign := func(x int) int {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return 0
	}

	for range 3000 {
		d := deck.New(rng)
		board := d.DrawN(5)
		a := append(d.DrawN(2), board...)
		b := append(d.DrawN(2), board...)

		want := sign(int(oracle(a)) - int(oracle(b)))
		got := Compare(MustEvaluate(a), MustEvaluate(b))
		require.Equal(t, want, got, "%s vs %s", deck.FormatCards(a), deck.FormatCards(b))
	}
}

func TestEstimateEquity(t *testing.T) {
	t.Parallel()

	req := EquityRequest{
		Hole:      deck.MustParseCards("AsAh"),
		Opponents: 1,
		Samples:   4000,
		Seed:      3,
		Workers:   4,
	}
	eq, err := EstimateEquity(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, eq, 0.04)

	again, err := EstimateEquity(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, eq, again, "same seed should give same estimate")

	nuts, err := EstimateEquity(context.Background(), EquityRequest{
		Hole:      deck.MustParseCards("AsKs"),
		Board:     deck.MustParseCards("QsJsTs2h3d"),
		Opponents: 3,
		Samples:   200,
		Seed:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, nuts)

	_, err = EstimateEquity(context.Background(), EquityRequest{Hole: deck.MustParseCards("As"), Opponents: 1, Samples: 1})
	assert.ErrorIs(t, err, ErrInvalidHand)
}
