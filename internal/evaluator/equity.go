package evaluator

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/randutil"
)

// EquityRequest describes a Monte Carlo equity estimate for one hand
// against random opponent holdings.
type EquityRequest struct {
	Hole      []deck.Card
	Board     []deck.Card
	Opponents int
	Samples   int
	Seed      int64
	Workers   int // defaults to GOMAXPROCS
}

// EstimateEquity returns the share of the pot the hole cards win on
// average, counting split pots fractionally. Samples are spread over
// independent workers, each with its own generator derived from Seed, so
// a given request always yields the same estimate.
func EstimateEquity(ctx context.Context, req EquityRequest) (float64, error) {
	if len(req.Hole) != 2 {
		return 0, fmt.Errorf("%w: need 2 hole cards, got %d", ErrInvalidHand, len(req.Hole))
	}
	if len(req.Board) > 5 {
		return 0, fmt.Errorf("%w: board has %d cards", ErrInvalidHand, len(req.Board))
	}
	if req.Opponents < 1 {
		return 0, fmt.Errorf("need at least one opponent, got %d", req.Opponents)
	}
	if req.Samples <= 0 {
		return 0, nil
	}

	known := append(append([]deck.Card{}, req.Hole...), req.Board...)
	live, err := deck.NewStacked(known...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHand, err)
	}
	live.DrawN(len(known))
	available := live.DrawN(deck.Size)

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, req.Samples)

	shares := make([]float64, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := req.Samples / workers
		if w < req.Samples%workers {
			n++
		}
		rng := randutil.New(randutil.Derive(req.Seed, w))
		g.Go(func() error {
			share, err := equityWorker(ctx, req, available, n, rng)
			shares[w] = share
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0.0
	for _, s := range shares {
		total += s
	}
	return total / float64(req.Samples), nil
}

func equityWorker(ctx context.Context, req EquityRequest, available []deck.Card, samples int, rng *rand.Rand) (float64, error) {
	need := 5 - len(req.Board) + 2*req.Opponents
	if need > len(available) {
		return 0, fmt.Errorf("not enough cards for %d opponents", req.Opponents)
	}

	pool := make([]deck.Card, len(available))
	share := 0.0
	for i := range samples {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		// partial Fisher-Yates: the first `need` cards are a random draw
		copy(pool, available)
		for j := range need {
			k := j + rng.IntN(len(pool)-j)
			pool[j], pool[k] = pool[k], pool[j]
		}

		board := append(append([]deck.Card{}, req.Board...), pool[:5-len(req.Board)]...)
		opp := pool[5-len(req.Board) : need]

		hero := MustEvaluate(append(append([]deck.Card{}, req.Hole...), board...))
		best, tied := true, 1
		for o := 0; o < len(opp); o += 2 {
			r := MustEvaluate(append([]deck.Card{opp[o], opp[o+1]}, board...))
			switch Compare(r, hero) {
			case 1:
				best = false
			case 0:
				tied++
			}
			if !best {
				break
			}
		}
		if best {
			share += 1 / float64(tied)
		}
	}
	return share, nil
}
