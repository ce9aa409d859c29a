// Package simulator plays many hands of bots against each other across
// independent tables and aggregates the results into a statistics.Report.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/handid"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/internal/statistics"
)

// Seat describes one bot at every table of the simulation.
type Seat struct {
	Name     string
	Strategy string
	Script   []string
	Samples  int
}

// Config holds configuration for running simulations
type Config struct {
	Hands   int // per table
	Tables  int
	Seed    int64
	Workers int

	InitialBankroll int
	SmallBlind      int
	BigBlind        int
	RaiseMultiple   int
	OddChip         game.OddChipPolicy
	StrictRaise     bool

	Seats []Seat

	DecisionTimeout time.Duration
	Clock           quartz.Clock
	Logger          *log.Logger
}

// FromConfig converts a loaded configuration file into a simulator Config.
func FromConfig(c *config.Config, logger *log.Logger) Config {
	seats := make([]Seat, len(c.Players))
	for i, p := range c.Players {
		seats[i] = Seat{Name: p.Name, Strategy: p.Strategy, Script: p.Script, Samples: p.Samples}
	}
	return Config{
		Hands:           c.Simulation.Hands,
		Tables:          c.Simulation.Tables,
		Seed:            c.Simulation.Seed,
		Workers:         c.Simulation.Workers,
		InitialBankroll: c.Table.InitialBankroll,
		SmallBlind:      c.Table.SmallBlind,
		BigBlind:        c.Table.BigBlind,
		RaiseMultiple:   c.Table.RaiseMultiple,
		OddChip:         c.OddChipPolicy(),
		StrictRaise:     c.Table.StrictRaise,
		Seats:           seats,
		DecisionTimeout: c.DecisionTimeout(),
		Logger:          logger,
	}
}

// Simulator runs poker hand simulations
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(cfg Config) (*Simulator, error) {
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", cfg.Hands)
	}
	if cfg.Tables <= 0 {
		cfg.Tables = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if n := len(cfg.Seats); n < game.MinPlayers || n > game.MaxPlayers {
		return nil, &game.InvalidPlayerCountError{Count: n}
	}
	for _, s := range cfg.Seats {
		if !bot.IsKnown(s.Strategy) {
			return nil, fmt.Errorf("seat %s: unknown strategy %q", s.Name, s.Strategy)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}

	return &Simulator{config: cfg, logger: cfg.Logger.WithPrefix("simulator")}, nil
}

// Run plays every table and returns the merged report. Tables run
// concurrently on up to Workers goroutines; the result only depends on the
// seed.
func (s *Simulator) Run(ctx context.Context) (*statistics.Report, error) {
	reports := make([]*statistics.Report, s.config.Tables)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range reports {
		g.Go(func() error {
			r, err := s.runTable(ctx, i)
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := statistics.NewReport()
	for _, r := range reports {
		report.Merge(r)
	}
	if err := report.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return report, nil
}

// table is one game plus the seat names in seat order.
type table struct {
	game  *game.Game
	names []string
}

func (s *Simulator) runTable(ctx context.Context, index int) (*statistics.Report, error) {
	seed := randutil.Derive(s.config.Seed, index)
	logger := s.logger.With("table", index)

	players, err := s.players(seed, logger)
	if err != nil {
		return nil, err
	}

	t, err := s.newTable(seed, players, logger)
	if err != nil {
		return nil, err
	}

	report := statistics.NewReport()
	start := time.Now()
	for report.Hands < s.config.Hands {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := t.game.PlayHand()
		if errors.Is(err, game.ErrGameOver) {
			logger.Debug("Table busted, restarting", "hands", report.Hands)
			report.Restarts++
			if t, err = s.newTable(seed+int64(report.Restarts), players, logger); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		logger.Debug("Hand finished", "hand", res.HandID, "pot", res.Pot, "winners", res.Winners)
		report.AddHand(t.names, s.config.BigBlind, res)
	}

	logger.Info("Table finished", "hands", report.Hands, "restarts", report.Restarts, "elapsed", time.Since(start))
	return report, nil
}

// players builds one bot per seat, each with its own stream derived from
// the table seed. Bots are kept across table restarts.
func (s *Simulator) players(seed int64, logger *log.Logger) ([]game.Player, error) {
	players := make([]game.Player, len(s.config.Seats))
	for i, seat := range s.config.Seats {
		p, err := bot.New(seat.Strategy, bot.Options{
			RNG:     randutil.New(randutil.Derive(seed, i+1)),
			Logger:  logger.With("seat", seat.Name),
			Script:  seat.Script,
			Samples: seat.Samples,
			Timeout: s.config.DecisionTimeout,
			Clock:   s.config.Clock,
		})
		if err != nil {
			return nil, fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		players[i] = p
	}
	return players, nil
}

func (s *Simulator) newTable(seed int64, players []game.Player, logger *log.Logger) (*table, error) {
	ids := handid.New(randutil.New(randutil.Derive(seed, len(players)+1)), s.config.Clock)
	opts := []game.Option{
		game.WithLogger(logger),
		game.WithRNG(randutil.New(randutil.Derive(seed, 0))),
		game.WithHandIDFunc(ids.Generate),
		game.WithOddChipPolicy(s.config.OddChip),
	}
	if s.config.RaiseMultiple > 0 {
		opts = append(opts, game.WithRaiseMultiple(s.config.RaiseMultiple))
	}
	if s.config.StrictRaise {
		opts = append(opts, game.WithStrictRaise())
	}

	g, err := game.New(s.config.InitialBankroll, s.config.SmallBlind, s.config.BigBlind, opts...)
	if err != nil {
		return nil, err
	}

	t := &table{game: g, names: make([]string, len(players))}
	for i, p := range players {
		if _, err := g.RegisterPlayer(s.config.Seats[i].Name, p); err != nil {
			return nil, err
		}
		t.names[i] = s.config.Seats[i].Name
	}
	return t, nil
}
