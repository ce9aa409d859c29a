package game

// determineLegalMoves recomputes the legal set for the current seat.
func (g *Game) determineLegalMoves() {
	g.legal = g.legal[:0]
	if g.current < 0 {
		return
	}

	s := g.seats[g.current]
	g.legal = append(g.legal, Fold)
	if g.playerPots[g.current] == g.roundMax() {
		g.legal = append(g.legal, Check)
	} else if s.bankroll > 0 {
		g.legal = append(g.legal, Call)
	}
	if s.bankroll > 0 && (!g.cfg.strictRaise || s.bankroll >= g.fullRaise()) {
		g.legal = append(g.legal, Raise)
	}

	g.dumpState()
}

// processDecision applies one action for the current seat. Legality is
// the caller's concern; blinds are forced and never checked.
func (g *Game) processDecision(a Action) {
	idx := g.current
	s := g.seats[idx]

	contribution := 0
	switch a {
	case SmallBlind:
		contribution = min(g.smallBlind, s.bankroll)
	case BigBlind:
		contribution = min(g.bigBlind, s.bankroll)
	case Fold:
		g.active[idx] = false
	case Call:
		contribution = g.callAmount(idx)
		g.checkers = 0
	case Check:
		g.checkers++
	case Raise:
		contribution = min(g.fullRaise(), s.bankroll)
		g.checkers = 0
	}

	s.bankroll -= contribution
	g.playerPots[idx] += contribution
	g.committed[idx] += contribution
	g.roundPot += contribution
	if g.playerPots[idx] == g.roundMax() {
		g.minCall = g.playerPots[idx]
	}
	s.actions = append(s.actions, a)

	g.logger.Info("Player action",
		"seat", idx,
		"name", s.name,
		"action", a,
		"contribution", contribution,
		"bankroll", s.bankroll,
		"round_pot", g.roundPot,
	)
}

// callAmount is what a Call from seat would put in, capped at its bankroll.
func (g *Game) callAmount(seat int) int {
	owed := max(g.minCall-g.playerPots[seat], 0)
	return min(owed, g.seats[seat].bankroll)
}

// fullRaise is the uncapped contribution of a Raise: a fixed number of big
// blinds on top of the current bet.
func (g *Game) fullRaise() int {
	return g.cfg.raiseMultiple*g.bigBlind + g.minCall
}
