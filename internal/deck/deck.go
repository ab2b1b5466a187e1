// Package deck deals hands from a seeded standard deck. Dealt cards carry
// their slot positions so they can be handed straight to the evaluator.
package deck

import (
	rand "math/rand/v2"

	"github.com/lox/balatrobot/internal/card"
)

// Size is the number of cards in a standard deck.
const Size = 52

// Deck represents a shuffled standard deck
type Deck struct {
	cards []card.Card
	next  int
	rng   *rand.Rand
}

// New creates a shuffled deck. The same seed always yields the same order.
func New(seed int64) *Deck {
	d := &Deck{
		cards: make([]card.Card, 0, Size),
		rng:   newRand(seed),
	}
	for _, s := range card.Suits {
		for _, r := range card.Ranks {
			d.cards = append(d.cards, card.Card{Suit: s, Rank: r})
		}
	}
	d.Shuffle()
	return d
}

// Shuffle collects every card back and shuffles using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := range d.cards {
		d.cards[i].Debuffed = false
		d.cards[i].Position = 0
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards numbered with positions 0..n-1. It returns nil when
// fewer than n cards remain.
func (d *Deck) Deal(n int) []card.Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	out := make([]card.Card, n)
	copy(out, d.cards[d.next:d.next+n])
	for i := range out {
		out[i].Position = i
	}
	d.next += n
	return out
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Debuff marks every card of the suit as debuffed, the way a boss blind
// disables a suit for the round.
func Debuff(cards []card.Card, suit card.Suit) []card.Card {
	for i := range cards {
		if cards[i].Suit == suit {
			cards[i].Debuffed = true
		}
	}
	return cards
}

const goldenRatio64 = 0x9e3779b97f4a7c15

// newRand derives the two PCG seeds rand/v2 needs from one int64 so every
// caller gets a reproducible sequence.
func newRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is the splitmix64 finaliser.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
