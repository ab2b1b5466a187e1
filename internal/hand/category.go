package hand

import (
	"fmt"
	"strings"
)

// Category is a poker hand type. Higher values are stronger.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush

	// Secret categories need duplicated cards and are never matched here.
	FiveOfAKind
	FlushHouse
	FlushFive
)

// Priority lists the categories the classifier can match, strongest first.
var Priority = []Category{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	Pair,
}

var categoryNames = map[Category]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
	FiveOfAKind:   "Five of a Kind",
	FlushHouse:    "Flush House",
	FlushFive:     "Flush Five",
}

// String returns the string representation of a category
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Size returns the number of positions a match of this category holds.
func (c Category) Size() int {
	switch c {
	case Pair:
		return 2
	case ThreeOfAKind:
		return 3
	case TwoPair, FourOfAKind:
		return 4
	case HighCard:
		return 0
	default:
		return 5
	}
}

// ParseCategory accepts a category name in any case with spaces, dashes or
// underscores, e.g. "Full House", "full_house" or "three-of-a-kind".
func ParseCategory(s string) (Category, error) {
	norm := func(v string) string {
		v = strings.ToLower(v)
		return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(v)
	}
	want := norm(s)
	for c, name := range categoryNames {
		if norm(name) == want {
			return c, nil
		}
	}
	return HighCard, fmt.Errorf("unknown hand category %q", s)
}

// Match is a category query result.
type Match struct {
	Category  Category
	Positions []int // nil when the category cannot be formed
}

// Found reports whether the match holds any positions.
func (m Match) Found() bool {
	return len(m.Positions) > 0
}
