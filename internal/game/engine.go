package game

import (
	"fmt"
	"slices"
)

// PlayHand starts a hand and asks each seat's Player for decisions until it
// ends. A decision outside the legal set is recorded as a warning and
// replaced by the first legal action (always Fold) unless the game is
// permissive.
func (g *Game) PlayHand() (*HandResult, error) {
	if g.gameOver {
		return nil, ErrGameOver
	}
	if err := g.StartNewHand(); err != nil {
		return nil, err
	}
	if g.gameOver {
		return nil, ErrGameOver
	}

	for decisions := 0; g.inProgress; decisions++ {
		if decisions >= g.cfg.maxDecisions {
			g.logger.Error("Hand stalled", "hand", g.handNumber, "decisions", decisions)
			return nil, fmt.Errorf("%w: hand %s after %d decisions", ErrHandStalled, g.handID, decisions)
		}

		seat := g.seats[g.current]
		g.determineLegalMoves()
		legal := slices.Clone(g.legal)

		action := seat.player.Decide(legal, g.observation(), g.info())
		if !slices.Contains(legal, action) && !g.cfg.permissive {
			g.illegal(action)
			action = legal[0]
		}

		if _, err := g.ApplyAction(action); err != nil {
			return nil, fmt.Errorf("apply %s for seat %d: %w", action, seat.index, err)
		}
	}

	return g.lastResult, nil
}
