package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// Size is the number of cards in a standard deck.
const Size = 52

// Deck is the set of cards not yet drawn in the current hand. Cards leave
// the deck when drawn and are never put back.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New returns a full 52-card deck that draws using rng.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	return &Deck{cards: fullDeck(), rng: rng}
}

// NewStacked returns a deck that deals the given cards first, in order,
// followed by the remaining cards of a standard deck in a fixed order.
// Used for deterministic deals in tests.
func NewStacked(top ...Card) (*Deck, error) {
	seen := make(map[Card]bool, len(top))
	for _, c := range top {
		if !c.Valid() {
			return nil, fmt.Errorf("invalid card %v", c)
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}

	cards := make([]Card, 0, Size)
	cards = append(cards, top...)
	for _, c := range fullDeck() {
		if !seen[c] {
			cards = append(cards, c)
		}
	}
	return &Deck{cards: cards}, nil
}

func fullDeck() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Draw removes one card from the deck. A random deck picks a uniformly
// random remaining card; a stacked deck deals from the top.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	idx := 0
	if d.rng != nil {
		idx = d.rng.IntN(len(d.cards))
	}
	card := d.cards[idx]
	d.cards = append(d.cards[:idx], d.cards[idx+1:]...)
	return card, true
}

// DrawN draws n cards, or fewer if the deck runs out.
func (d *Deck) DrawN(n int) []Card {
	cards := make([]Card, 0, n)
	for range n {
		c, ok := d.Draw()
		if !ok {
			break
		}
		cards = append(cards, c)
	}
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Contains reports whether c has not been drawn yet.
func (d *Deck) Contains(c Card) bool {
	for _, dc := range d.cards {
		if dc == c {
			return true
		}
	}
	return false
}
