// Package game implements the betting state machine of a Texas Hold'em
// cash game.
//
// The main type is Game, which owns every piece of mutable hand state:
// seats, bankrolls, hole cards, per-round contributions, pots, the deck and
// the community cards. Decisions come from the Player capability registered
// for each seat; the Game never lets a Player touch shared state directly.
//
// # Basic Usage
//
//	g, err := game.New(1000, 5, 10)
//	g.RegisterPlayer("alice", bot.NewCallBot(logger))
//	g.RegisterPlayer("bob", bot.NewRandBot(rng, logger))
//	result, err := g.PlayHand()
//
// Or drive the state machine one action at a time:
//
//	g.StartNewHand()
//	for !g.IsHandOver() {
//	    legal := g.LegalActions()
//	    outcome, err := g.ApplyAction(legal[0])
//	}
//
// # Rounds
//
// A hand moves through Preflop, Flop, Turn and River and ends at Showdown.
// A round closes when every active seat has checked, or when every active
// seat has put in the same non-zero amount. Once fewer than two seats are
// active the hand jumps straight to Showdown.
//
// # Deterministic Testing
//
// The random source is injected. Use WithRNG(randutil.New(seed)) for a
// reproducible shuffle, or WithDeckFunc with deck.NewStacked to deal
// exact cards.
//
// # Known limitations
//
// Raises are a fixed size (WithRaiseMultiple big blinds on top of the
// current bet). There are no side pots: the whole pot goes to the best hand
// among active seats, even when that seat was all-in for less.
package game
