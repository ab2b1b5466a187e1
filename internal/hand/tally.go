package hand

import "github.com/lox/balatrobot/internal/card"

// Tally counts cards per suit and per rank. Both maps hold every key of their
// domain, zero counts included.
type Tally struct {
	Suits map[card.Suit]int
	Ranks map[card.Rank]int
}

// Tally counts the hand's cards. With activeOnly set, debuffed cards are
// left out of both counts.
func (h Hand) Tally(activeOnly bool) Tally {
	t := Tally{
		Suits: make(map[card.Suit]int, len(card.Suits)),
		Ranks: make(map[card.Rank]int, len(card.Ranks)),
	}
	for _, s := range card.Suits {
		t.Suits[s] = 0
	}
	for _, r := range card.Ranks {
		t.Ranks[r] = 0
	}

	for _, c := range h.cards {
		if activeOnly && !c.Active() {
			continue
		}
		t.Suits[c.Suit]++
		t.Ranks[c.Rank]++
	}
	return t
}

// ranksWithAtLeast returns the ranks counted n or more times, highest first.
func (t Tally) ranksWithAtLeast(n int) []card.Rank {
	var out []card.Rank
	for i := len(card.Ranks) - 1; i >= 0; i-- {
		if r := card.Ranks[i]; t.Ranks[r] >= n {
			out = append(out, r)
		}
	}
	return out
}
