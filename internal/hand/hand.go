// Package hand classifies a set of held cards into poker hand categories.
//
// Every category query returns the positions of the cards forming the best
// instance of that category, or nil when the hand cannot form it. Debuffed
// cards keep their positions but never count toward a scoring group. A Hand
// is immutable once built, so queries are safe for concurrent use.
package hand

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lox/balatrobot/internal/card"
)

// ErrInvalidHand is returned when cards cannot form a hand, e.g. two cards
// claim the same position.
var ErrInvalidHand = errors.New("invalid hand")

// Hand is an ordered, read-only set of held cards.
type Hand struct {
	cards []card.Card
	// byPosition holds the active cards sorted by position; every search
	// enumerates in this order so results are deterministic.
	byPosition []card.Card
}

// New builds a hand from cards in their physical order. Positions must be
// unique and every card must have a valid suit and rank.
func New(cards ...card.Card) (Hand, error) {
	seen := make(map[int]struct{}, len(cards))
	for i, c := range cards {
		if !c.Valid() {
			return Hand{}, fmt.Errorf("%w: card %d has suit %d rank %d", ErrInvalidHand, i, c.Suit, c.Rank)
		}
		if _, dup := seen[c.Position]; dup {
			return Hand{}, fmt.Errorf("%w: duplicate position %d", ErrInvalidHand, c.Position)
		}
		seen[c.Position] = struct{}{}
	}

	h := Hand{cards: slices.Clone(cards)}
	for _, c := range h.cards {
		if c.Active() {
			h.byPosition = append(h.byPosition, c)
		}
	}
	slices.SortStableFunc(h.byPosition, func(a, b card.Card) int {
		return a.Position - b.Position
	})
	return h, nil
}

// MustNew builds a hand and panics on error (for tests)
func MustNew(cards ...card.Card) Hand {
	h, err := New(cards...)
	if err != nil {
		panic(err)
	}
	return h
}

// Parse builds a hand from card notation, see card.ParseHand.
func Parse(s string) (Hand, error) {
	cards, err := card.ParseHand(s)
	if err != nil {
		return Hand{}, err
	}
	return New(cards...)
}

// MustParse parses a hand and panics on error (for tests)
func MustParse(s string) Hand {
	h, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Cards returns a copy of the cards in their physical order.
func (h Hand) Cards() []card.Card {
	return slices.Clone(h.cards)
}

// Len returns the number of cards held, debuffed ones included.
func (h Hand) Len() int {
	return len(h.cards)
}

// Card returns the card at the given position.
func (h Hand) Card(position int) (card.Card, bool) {
	for _, c := range h.cards {
		if c.Position == position {
			return c, true
		}
	}
	return card.Card{}, false
}

// String returns the cards in physical order, e.g. "A♥ A♣ [K♣]".
func (h Hand) String() string {
	var cardStrs []string
	for _, c := range h.cards {
		cardStrs = append(cardStrs, c.String())
	}
	return strings.Join(cardStrs, " ")
}

// active returns the active cards in position order.
func (h Hand) active() []card.Card {
	return h.byPosition
}

// ofRank returns the active cards of a rank in position order.
func (h Hand) ofRank(r card.Rank) []card.Card {
	var out []card.Card
	for _, c := range h.byPosition {
		if c.Rank == r {
			out = append(out, c)
		}
	}
	return out
}

// ofSuit returns the active cards of a suit in position order.
func (h Hand) ofSuit(s card.Suit) []card.Card {
	var out []card.Card
	for _, c := range h.byPosition {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

func positions(cards []card.Card) []int {
	if len(cards) == 0 {
		return nil
	}
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.Position
	}
	return out
}
