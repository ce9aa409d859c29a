package game

// startRound performs the side effects of entering g.round: blinds on the
// preflop, community cards afterwards, and positioning the first seat to act.
func (g *Game) startRound() {
	g.checkers = 0
	g.minCall = 0

	switch g.round {
	case Preflop:
		g.logger.Info("Starting round", "round", g.round, "hand", g.handNumber)
		g.current = g.dealer
		// Heads-up the dealer posts the small blind.
		if g.dealtIn != 2 {
			g.nextPlayer()
		}
		g.processDecision(SmallBlind)
		g.nextPlayer()
		g.processDecision(BigBlind)
		g.current = g.dealer
	case Flop, Turn, River:
		n := g.round.communityCards()
		cards := g.deck.DrawN(n)
		g.community = append(g.community, cards...)
		g.logger.Info("Starting round", "round", g.round, "dealt", n, "board", g.community)
		g.current = g.dealer
		g.nextPlayer()
	default:
		g.logger.Info("Starting showdown")
		return
	}

	g.logger.Debug("Betting opens", "seat", g.current)
}

// endRound closes the pots and moves to the next round.
func (g *Game) endRound() {
	g.closePots()
	g.round++
	g.logger.Debug("Round over", "next", g.round)
}

// closePots moves the round pot into the community pot and resets every
// seat's round contribution.
func (g *Game) closePots() {
	g.communityPot += g.roundPot
	g.roundPot = 0
	for i := range g.playerPots {
		g.playerPots[i] = 0
	}
}

// nextPlayer passes the turn to the next active seat, or closes the round
// when betting is complete. With fewer than two active seats the hand goes
// straight to showdown.
func (g *Game) nextPlayer() {
	alive := g.alive()
	if alive < 2 {
		g.logger.Info("One player remains, skipping to showdown")
		g.round = Showdown
		return
	}

	if g.checkers == alive {
		g.logger.Debug("All players checked", "round", g.round)
		g.endRound()
		g.startRound()
		return
	}

	if g.betsSettled() {
		g.logger.Debug("All players matched", "round", g.round, "amount", g.minCall)
		g.endRound()
		g.startRound()
		return
	}

	n := len(g.seats)
	for i := 1; i <= n; i++ {
		idx := (g.current + i) % n
		if g.active[idx] {
			g.current = idx
			g.logger.Debug("Moved to player", "seat", idx)
			return
		}
	}

	g.logger.Error("No active seat to move to", "current", g.current)
	g.current = -1
}

// betsSettled reports whether every active seat has put in the round
// maximum and none of them is still at zero.
func (g *Game) betsSettled() bool {
	top := g.roundMax()
	for i, pot := range g.playerPots {
		if !g.active[i] {
			continue
		}
		if pot != top || pot == 0 {
			return false
		}
	}
	return true
}

func (g *Game) alive() int {
	n := 0
	for _, a := range g.active {
		if a {
			n++
		}
	}
	return n
}

// roundMax is the largest contribution any seat has made this round.
func (g *Game) roundMax() int {
	top := 0
	for _, pot := range g.playerPots {
		top = max(top, pot)
	}
	return top
}
