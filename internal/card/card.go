// Package card models the playing cards held in a hand: suit, rank, debuff
// status and the fixed slot position the game assigned to each card.
package card

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

// Suits lists every suit in tally order.
var Suits = [...]Suit{Clubs, Spades, Hearts, Diamonds}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Name returns the suit name the game uses ("Hearts", "Clubs", ...).
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Diamonds
}

// Rank represents a card rank. The numeric value is the rank's position in
// the total order, Two=2 through Ace=14.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// LowAce is the value an Ace takes when it closes a five-high straight.
const LowAce = 1

// Ranks lists every rank from lowest to highest.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r < Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Value returns the rank's place in the ordering, 2..14 with Ace high.
func (r Rank) Value() int {
	return int(r)
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents one card held in a hand.
type Card struct {
	Suit     Suit
	Rank     Rank
	Debuffed bool // debuffed cards hold a slot but never score
	Position int  // slot index within the hand, the identity reported back to callers
}

// New creates an active card at the given position.
func New(suit Suit, rank Rank, position int) Card {
	return Card{Suit: suit, Rank: rank, Position: position}
}

// Active reports whether the card may count toward a scoring group.
func (c Card) Active() bool {
	return !c.Debuffed
}

// Value returns the rank value of the card (Ace=14).
func (c Card) Value() int {
	return c.Rank.Value()
}

// Valid reports whether both suit and rank are in range.
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// String returns the card as rank and suit symbol, e.g. "A♥". Debuffed cards
// are wrapped in brackets.
func (c Card) String() string {
	if c.Debuffed {
		return fmt.Sprintf("[%s%s]", c.Rank, c.Suit)
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Key returns the game's card key for this card, e.g. "H_A" or "C_10".
func (c Card) Key() string {
	return fmt.Sprintf("%c_%s", c.Suit.Name()[0], c.Rank)
}
