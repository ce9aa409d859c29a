package bot

import (
	"context"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/game"
)

// DefaultEquitySamples is the Monte Carlo sample count per decision.
const DefaultEquitySamples = 300

// EquityBot estimates its equity against the remaining opponents and
// compares it with the pot odds it is offered.
type EquityBot struct {
	rng     *rand.Rand
	logger  *log.Logger
	samples int
}

// NewEquityBot creates a new EquityBot instance
func NewEquityBot(rng *rand.Rand, logger *log.Logger, samples int) *EquityBot {
	if samples <= 0 {
		samples = DefaultEquitySamples
	}
	return &EquityBot{rng: rng, logger: logger.WithPrefix("equitybot"), samples: samples}
}

func (b *EquityBot) Decide(legal []game.Action, obs game.Observation, info game.Info) game.Action {
	equity, err := evaluator.EstimateEquity(context.Background(), evaluator.EquityRequest{
		Hole:      obs.Hole,
		Board:     obs.Community,
		Opponents: max(obs.Opponents(), 1),
		Samples:   b.samples,
		Seed:      b.rng.Int64(),
		Workers:   1,
	})
	if err != nil {
		b.logger.Error("Equity estimate failed", "seat", info.Seat, "error", err)
		return prefer(legal, game.Check, game.Fold)
	}

	potOdds := 0.0
	if info.ToCall > 0 {
		potOdds = float64(info.ToCall) / float64(obs.Pot()+info.ToCall)
	}
	strength := equityStrength(equity)

	b.logger.Debug("Decision analysis",
		"seat", info.Seat,
		"round", obs.Round,
		"hole", obs.Hole,
		"equity", equity,
		"pot_odds", potOdds,
		"strength", strength)

	switch {
	case strength >= Strong:
		return prefer(legal, game.Raise, game.Call, game.Check)
	case equity >= potOdds:
		return prefer(legal, game.Check, game.Call)
	default:
		return prefer(legal, game.Check, game.Fold)
	}
}
