package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/deck"
)

// Game is a cash game table and the state of the hand being played on it.
// A Game is not safe for concurrent use; run independent tables in their
// own goroutines instead.
type Game struct {
	cfg    *config
	logger *log.Logger

	initialBankroll int
	smallBlind      int
	bigBlind        int

	seats []*seat

	gameOver   bool
	inProgress bool
	handNumber int
	handID     string

	round        Round
	active       []bool
	dealtIn      int
	dealer       int
	current      int // -1 when no seat is to act
	playerPots   []int
	roundPot     int
	communityPot int
	minCall      int
	checkers     int
	legal        []Action

	deck      *deck.Deck
	community []deck.Card

	committed []int // chips each seat put in this hand
	dropped   int   // odd chips discarded under OddChipDrop

	warnings   []*IllegalActionWarning
	lastResult *HandResult
}

// New creates a table where every registered player starts with
// initialBankroll chips and blinds of smallBlind/bigBlind.
func New(initialBankroll, smallBlind, bigBlind int, opts ...Option) (*Game, error) {
	if initialBankroll <= 0 {
		return nil, fmt.Errorf("initial bankroll must be positive, got %d", initialBankroll)
	}
	if smallBlind <= 0 || bigBlind <= smallBlind {
		return nil, fmt.Errorf("invalid blinds %d/%d", smallBlind, bigBlind)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.ensureRNG()

	return &Game{
		cfg:             cfg,
		logger:          cfg.logger.WithPrefix("game"),
		initialBankroll: initialBankroll,
		smallBlind:      smallBlind,
		bigBlind:        bigBlind,
		current:         -1,
		round:           Showdown,
	}, nil
}

// RegisterPlayer seats a player at the next free seat with the initial
// bankroll and returns the seat index. Seats are stable for the lifetime of
// the table. Players can only join between hands.
func (g *Game) RegisterPlayer(name string, p Player) (int, error) {
	if p == nil {
		return -1, errors.New("player is required")
	}
	if g.inProgress {
		return -1, ErrHandInProgress
	}
	if len(g.seats) >= MaxPlayers {
		return -1, &InvalidPlayerCountError{Count: len(g.seats) + 1}
	}

	s := &seat{
		index:    len(g.seats),
		name:     name,
		bankroll: g.initialBankroll,
		player:   p,
	}
	g.seats = append(g.seats, s)
	g.active = append(g.active, false)
	g.playerPots = append(g.playerPots, 0)
	g.committed = append(g.committed, 0)
	g.gameOver = false

	g.logger.Debug("Player added", "name", name, "seat", s.index, "bankroll", s.bankroll)
	return s.index, nil
}

// SetRNG replaces the random source. It takes effect from the next deck.
func (g *Game) SetRNG(rng *rand.Rand) {
	if rng != nil {
		g.cfg.rng = rng
	}
}

// StartNewHand resets the table for a new hand, deals hole cards and posts
// the blinds. When fewer than two seats have chips the hand is not started
// and IsGameOver reports true.
func (g *Game) StartNewHand() error {
	if n := len(g.seats); n < MinPlayers || n > MaxPlayers {
		return &InvalidPlayerCountError{Count: n}
	}
	if g.inProgress {
		return ErrHandInProgress
	}

	funded := 0
	for _, s := range g.seats {
		if s.bankroll > 0 {
			funded++
		}
	}
	if funded < 2 {
		g.gameOver = true
		g.logger.Info("Game over", "funded_seats", funded)
		return nil
	}

	g.handNumber++
	g.handID = g.cfg.handID()
	g.logger.Info("Starting new hand", "hand", g.handNumber, "id", g.handID)

	g.round = Preflop
	g.community = nil
	g.communityPot = 0
	g.roundPot = 0
	g.checkers = 0
	g.minCall = 0
	g.legal = nil
	g.lastResult = nil
	g.dealtIn = 0
	for i, s := range g.seats {
		s.hole = nil
		s.actions = nil
		g.playerPots[i] = 0
		g.committed[i] = 0
		g.active[i] = s.bankroll > 0
		if g.active[i] {
			g.dealtIn++
		}
	}
	if !g.active[g.dealer] {
		g.dealer = g.nextFundedSeat(g.dealer)
	}

	g.deck = g.cfg.deckFunc(g.cfg.rng)
	for i, s := range g.seats {
		if !g.active[i] {
			continue
		}
		s.hole = g.deck.DrawN(2)
		g.logger.Debug("Dealt hole cards", "seat", i, "cards", deck.FormatCards(s.hole))
	}

	g.inProgress = true
	g.current = g.dealer
	g.startRound()
	return nil
}

// ApplyAction applies a decision for the current seat and advances the
// hand. Actions outside LegalActions are rejected with an
// *IllegalActionWarning unless the game is permissive.
func (g *Game) ApplyAction(a Action) (Outcome, error) {
	if !g.inProgress {
		return TurnAdvanced, ErrHandOver
	}
	if g.current < 0 {
		return TurnAdvanced, ErrNoCurrentPlayer
	}

	g.determineLegalMoves()
	if !slices.Contains(g.legal, a) {
		w := g.illegal(a)
		if !g.cfg.permissive {
			return TurnAdvanced, w
		}
	}

	g.processDecision(a)

	before := g.round
	g.nextPlayer()

	switch {
	case g.round == Showdown:
		g.endHand()
		return HandEnded, nil
	case g.round != before:
		return RoundAdvanced, nil
	default:
		return TurnAdvanced, nil
	}
}

// LegalActions returns the actions the current seat may take.
func (g *Game) LegalActions() []Action {
	if !g.inProgress || g.current < 0 {
		return nil
	}
	g.determineLegalMoves()
	return slices.Clone(g.legal)
}

// CommunityCards returns the board dealt so far.
func (g *Game) CommunityCards() []deck.Card {
	return slices.Clone(g.community)
}

// Pots is a snapshot of the chips wagered and not yet paid out this hand.
type Pots struct {
	Round     int   // chips bet in the current round
	Community int   // chips from closed rounds
	PerSeat   []int // each seat's contribution in the current round
}

// Total returns every chip in the middle.
func (p Pots) Total() int {
	return p.Round + p.Community
}

// PotTotals returns the round pot, community pot and per-seat contributions.
func (g *Game) PotTotals() Pots {
	return Pots{
		Round:     g.roundPot,
		Community: g.communityPot,
		PerSeat:   slices.Clone(g.playerPots),
	}
}

// IsHandOver reports whether no hand is in progress.
func (g *Game) IsHandOver() bool {
	return !g.inProgress
}

// IsGameOver reports whether the last StartNewHand found fewer than two
// seats with chips.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// CurrentSeat returns the seat to act.
func (g *Game) CurrentSeat() (int, error) {
	if !g.inProgress || g.current < 0 {
		return -1, ErrNoCurrentPlayer
	}
	return g.current, nil
}

// Round returns the current round. Between hands it is Showdown.
func (g *Game) Round() Round { return g.round }

// Dealer returns the dealer seat.
func (g *Game) Dealer() int { return g.dealer }

// MinCall returns the highest contribution in the current round.
func (g *Game) MinCall() int { return g.minCall }

// NumPlayers returns the number of registered seats.
func (g *Game) NumPlayers() int { return len(g.seats) }

// HandNumber returns the number of hands started on this table.
func (g *Game) HandNumber() int { return g.handNumber }

// HandID returns the id of the current or last hand.
func (g *Game) HandID() string { return g.handID }

// Blinds returns the small and big blind.
func (g *Game) Blinds() (int, int) { return g.smallBlind, g.bigBlind }

// Name returns the name registered for a seat.
func (g *Game) Name(seat int) string {
	if seat < 0 || seat >= len(g.seats) {
		return ""
	}
	return g.seats[seat].name
}

// Bankroll returns the chips a seat has behind.
func (g *Game) Bankroll(seat int) int {
	if seat < 0 || seat >= len(g.seats) {
		return 0
	}
	return g.seats[seat].bankroll
}

// IsActive reports whether a seat is still contesting the current hand.
func (g *Game) IsActive(seat int) bool {
	return seat >= 0 && seat < len(g.active) && g.active[seat]
}

// HoleCards returns a seat's hole cards.
func (g *Game) HoleCards(seat int) []deck.Card {
	if seat < 0 || seat >= len(g.seats) {
		return nil
	}
	return slices.Clone(g.seats[seat].hole)
}

// ActionHistory returns the actions a seat took this hand, blinds included.
func (g *Game) ActionHistory(seat int) []Action {
	if seat < 0 || seat >= len(g.seats) {
		return nil
	}
	return slices.Clone(g.seats[seat].actions)
}

// TotalChips returns all chips on the table: bankrolls plus pots.
func (g *Game) TotalChips() int {
	total := g.roundPot + g.communityPot
	for _, s := range g.seats {
		total += s.bankroll
	}
	return total
}

// DroppedChips returns the odd chips discarded by split pots so far. Under
// OddChipDrop, TotalChips plus DroppedChips is constant.
func (g *Game) DroppedChips() int { return g.dropped }

// Warnings returns every illegal action recorded so far.
func (g *Game) Warnings() []*IllegalActionWarning {
	return slices.Clone(g.warnings)
}

// LastResult returns the result of the most recently finished hand.
func (g *Game) LastResult() *HandResult {
	return g.lastResult
}

// nextFundedSeat returns the next seat after from with chips, or from
// itself when no other seat has any.
func (g *Game) nextFundedSeat(from int) int {
	n := len(g.seats)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if g.seats[idx].bankroll > 0 {
			return idx
		}
	}
	return from
}

func (g *Game) illegal(a Action) *IllegalActionWarning {
	w := &IllegalActionWarning{
		HandID: g.handID,
		Round:  g.round,
		Seat:   g.current,
		Action: a,
		Legal:  slices.Clone(g.legal),
	}
	g.warnings = append(g.warnings, w)
	g.logger.Warn("Illegal action", "seat", w.Seat, "action", a, "legal", w.Legal, "round", w.Round)
	return w
}
