package statistics

import (
	"fmt"
	"math"

	"github.com/lox/holdem-engine/internal/game"
)

// HandResult is one player's share of a finished hand.
type HandResult struct {
	NetBB          float64
	Position       int  // seats after the dealer, 0 is the button
	WentToShowdown bool // the player's cards were shown
}

// PositionStats sums results at one table position.
type PositionStats struct {
	Hands int
	SumBB float64
}

// Mean returns big blinds per hand at the position.
func (p PositionStats) Mean() float64 {
	if p.Hands == 0 {
		return 0
	}
	return p.SumBB / float64(p.Hands)
}

// Statistics accumulates one player's results in big blinds. Only running
// sums are kept, so per-table statistics merge exactly.
type Statistics struct {
	Hands  int
	SumBB  float64
	SumBB2 float64

	// Showdown and uncontested results, losses included.
	ShowdownBB      float64
	NonShowdownBB   float64
	ShowdownWins    int
	NonShowdownWins int

	PositionResults [game.MaxPlayers]PositionStats
}

func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance is the sample variance of the per-hand results.
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return max((s.SumBB2-float64(s.Hands)*mean*mean)/float64(s.Hands-1), 0)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError is the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the normal approximation interval around
// the mean.
func (s *Statistics) ConfidenceInterval95() (low, high float64) {
	margin := 1.96 * s.StdError()
	return s.Mean() - margin, s.Mean() + margin
}

// Add records one hand.
func (s *Statistics) Add(r HandResult) {
	s.Hands++
	s.SumBB += r.NetBB
	s.SumBB2 += r.NetBB * r.NetBB

	won := r.NetBB > 0
	if r.WentToShowdown {
		s.ShowdownBB += r.NetBB
		if won {
			s.ShowdownWins++
		}
	} else {
		s.NonShowdownBB += r.NetBB
		if won {
			s.NonShowdownWins++
		}
	}

	if r.Position >= 0 && r.Position < len(s.PositionResults) {
		p := &s.PositionResults[r.Position]
		p.Hands++
		p.SumBB += r.NetBB
	}
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.SumBB += other.SumBB
	s.SumBB2 += other.SumBB2
	s.ShowdownBB += other.ShowdownBB
	s.NonShowdownBB += other.NonShowdownBB
	s.ShowdownWins += other.ShowdownWins
	s.NonShowdownWins += other.NonShowdownWins
	for i, p := range other.PositionResults {
		s.PositionResults[i].Hands += p.Hands
		s.PositionResults[i].SumBB += p.SumBB
	}
}

// Validate checks that the showdown split and the positions each account
// for every hand and every big blind.
func (s *Statistics) Validate() error {
	if split := s.ShowdownBB + s.NonShowdownBB; math.Abs(split-s.SumBB) > 1e-6 {
		return fmt.Errorf("showdown %.6f and non-showdown %.6f bb do not add up to %.6f",
			s.ShowdownBB, s.NonShowdownBB, s.SumBB)
	}
	if wins := s.ShowdownWins + s.NonShowdownWins; wins > s.Hands {
		return fmt.Errorf("%d wins in %d hands", wins, s.Hands)
	}

	hands := 0
	for _, p := range s.PositionResults {
		hands += p.Hands
	}
	if hands != s.Hands {
		return fmt.Errorf("positions hold %d hands, want %d", hands, s.Hands)
	}
	return nil
}
