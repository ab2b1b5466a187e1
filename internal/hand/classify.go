package hand

import (
	"slices"

	"github.com/lox/balatrobot/internal/card"
)

// fiveCards is the size of every straight, flush and full house.
const fiveCards = 5

// RoyalFlush returns the positions of five cards of one suit ranked exactly
// 10, J, Q, K, A. Subsets are enumerated in position order and the first
// qualifying subset is returned in that order.
func (h Hand) RoyalFlush() []int {
	var best []int
	h.eachSuitedFive(func(sub []card.Card) {
		if straightTop(sub) != card.Ace.Value() {
			return
		}
		if pos := positions(sub); best == nil || slices.Compare(pos, best) < 0 {
			best = pos
		}
	})
	return best
}

// StraightFlush returns the highest five-card run within one suit, highest
// card first. A-2-3-4-5 counts as a five-high run. Runs with equal tops go to
// the one found first in position order.
func (h Hand) StraightFlush() []int {
	var (
		best    []card.Card
		bestPos []int
		bestTop int
	)
	h.eachSuitedFive(func(sub []card.Card) {
		top := straightTop(sub)
		if top == 0 {
			return
		}
		pos := positions(sub)
		if top > bestTop || (top == bestTop && slices.Compare(pos, bestPos) < 0) {
			best, bestPos, bestTop = slices.Clone(sub), pos, top
		}
	})
	if best == nil {
		return nil
	}
	return positions(runOrder(best, bestTop))
}

// FourOfAKind returns four positions of the highest rank held four or more
// times. No kicker is included.
func (h Hand) FourOfAKind() []int {
	quads := h.Tally(true).ranksWithAtLeast(4)
	if len(quads) == 0 {
		return nil
	}
	return positions(h.ofRank(quads[0])[:4])
}

// FullHouse returns three positions of the richest rank (ties to the higher
// rank) followed by two positions of the highest other rank held at least
// twice.
func (h Hand) FullHouse() []int {
	if len(h.active()) < fiveCards {
		return nil
	}
	t := h.Tally(true)
	trips := t.ranksWithAtLeast(3)
	pairs := t.ranksWithAtLeast(2)
	if len(trips) == 0 || len(pairs) < 2 {
		return nil
	}

	triple := trips[0]
	for _, r := range trips[1:] {
		if t.Ranks[r] > t.Ranks[triple] {
			triple = r
		}
	}

	var pair card.Rank
	for _, r := range pairs {
		if r != triple {
			pair = r
			break
		}
	}

	out := positions(h.ofRank(triple)[:3])
	return append(out, positions(h.ofRank(pair)[:2])...)
}

// Flush returns the five highest cards of the suit with the most active
// cards, highest first. Suits with equal counts are compared on their top
// five ranks.
func (h Hand) Flush() []int {
	if len(h.active()) < fiveCards {
		return nil
	}
	t := h.Tally(true)

	var best []card.Card
	for _, s := range card.Suits {
		if t.Suits[s] < fiveCards {
			continue
		}
		suited := byRankDesc(h.ofSuit(s))
		if best == nil || len(suited) > len(best) ||
			(len(suited) == len(best) && compareRanks(suited[:fiveCards], best[:fiveCards]) > 0) {
			best = suited
		}
	}
	if best == nil {
		return nil
	}
	return positions(best[:fiveCards])
}

// Straight returns five cards of consecutive rank regardless of suit, highest
// card first. The run with the highest top wins, and each rank is filled by
// the first card of that rank in position order.
func (h Hand) Straight() []int {
	if len(h.active()) < fiveCards {
		return nil
	}

	// first card held at each rank value; the Ace also fills value 1
	var first [card.Ace + 1]*card.Card
	for i, c := range h.active() {
		if first[c.Rank] == nil {
			first[c.Rank] = &h.byPosition[i]
		}
	}
	first[card.LowAce] = first[card.Ace]

	for top := card.Ace.Value(); top >= card.Five.Value(); top-- {
		run := make([]int, 0, fiveCards)
		for v := top; v > top-fiveCards; v-- {
			if first[v] == nil {
				break
			}
			run = append(run, first[v].Position)
		}
		if len(run) == fiveCards {
			return run
		}
	}
	return nil
}

// ThreeOfAKind returns three positions of the highest rank held three or more
// times.
func (h Hand) ThreeOfAKind() []int {
	trips := h.Tally(true).ranksWithAtLeast(3)
	if len(trips) == 0 {
		return nil
	}
	return positions(h.ofRank(trips[0])[:3])
}

// TwoPair returns two positions from each of the two highest ranks held at
// least twice, higher rank first.
func (h Hand) TwoPair() []int {
	pairs := h.Tally(true).ranksWithAtLeast(2)
	if len(pairs) < 2 {
		return nil
	}
	out := positions(h.ofRank(pairs[0])[:2])
	return append(out, positions(h.ofRank(pairs[1])[:2])...)
}

// Pair returns two positions of the highest rank held at least twice.
func (h Hand) Pair() []int {
	pairs := h.Tally(true).ranksWithAtLeast(2)
	if len(pairs) == 0 {
		return nil
	}
	return positions(h.ofRank(pairs[0])[:2])
}

// Find runs the query for one category. High Card and the secret categories
// always return nil.
func (h Hand) Find(c Category) []int {
	switch c {
	case RoyalFlush:
		return h.RoyalFlush()
	case StraightFlush:
		return h.StraightFlush()
	case FourOfAKind:
		return h.FourOfAKind()
	case FullHouse:
		return h.FullHouse()
	case Flush:
		return h.Flush()
	case Straight:
		return h.Straight()
	case ThreeOfAKind:
		return h.ThreeOfAKind()
	case TwoPair:
		return h.TwoPair()
	case Pair:
		return h.Pair()
	default:
		return nil
	}
}

// Best returns the strongest category the hand can form. When nothing
// matches the result is High Card with no positions; choosing what to play
// then is up to the caller.
func (h Hand) Best() Match {
	for _, c := range Priority {
		if pos := h.Find(c); len(pos) > 0 {
			return Match{Category: c, Positions: pos}
		}
	}
	return Match{Category: HighCard}
}

// Evaluate runs every category query, strongest first.
func (h Hand) Evaluate() []Match {
	out := make([]Match, len(Priority))
	for i, c := range Priority {
		out[i] = Match{Category: c, Positions: h.Find(c)}
	}
	return out
}

// eachSuitedFive calls fn with every five-card subset of active cards sharing
// a suit. Subsets are built from cards in position order, so the positions of
// each subset ascend.
func (h Hand) eachSuitedFive(fn func(sub []card.Card)) {
	if len(h.active()) < fiveCards {
		return
	}
	sub := make([]card.Card, fiveCards)
	for _, s := range card.Suits {
		suited := h.ofSuit(s)
		forEachCombination(len(suited), fiveCards, func(idx []int) bool {
			for i, j := range idx {
				sub[i] = suited[j]
			}
			fn(sub)
			return true
		})
	}
}

// straightTop returns the top value of the run formed by five cards, 5 for
// A-2-3-4-5, or 0 when the cards are not five consecutive ranks.
func straightTop(cards []card.Card) int {
	vals := make([]int, 0, len(cards))
	for _, c := range cards {
		vals = append(vals, c.Value())
	}
	slices.Sort(vals)
	if len(slices.Compact(vals)) != fiveCards {
		return 0
	}
	if vals[4]-vals[0] == 4 {
		return vals[4]
	}
	if slices.Equal(vals, []int{2, 3, 4, 5, 14}) {
		return card.Five.Value()
	}
	return 0
}

// runOrder sorts the cards of a run highest first, with the Ace last in a
// five-high run.
func runOrder(cards []card.Card, top int) []card.Card {
	value := func(c card.Card) int {
		if c.Rank == card.Ace && top == card.Five.Value() {
			return card.LowAce
		}
		return c.Value()
	}
	slices.SortStableFunc(cards, func(a, b card.Card) int {
		return value(b) - value(a)
	})
	return cards
}

// byRankDesc returns the cards sorted highest rank first, keeping position
// order between equal ranks.
func byRankDesc(cards []card.Card) []card.Card {
	slices.SortStableFunc(cards, func(a, b card.Card) int {
		return b.Value() - a.Value()
	})
	return cards
}

// compareRanks compares two rank sequences lexicographically.
func compareRanks(a, b []card.Card) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if d := a[i].Value() - b[i].Value(); d != 0 {
			return d
		}
	}
	return len(a) - len(b)
}
