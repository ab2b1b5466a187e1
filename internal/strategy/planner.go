// Package strategy decides which held cards to play or discard. It is a
// caller of the hand evaluator: categories are tried strongest first, and
// when nothing good enough is held the least common suits are thrown away to
// dig for a flush.
package strategy

import (
	"fmt"
	"slices"

	"github.com/lox/balatrobot/internal/card"
	"github.com/lox/balatrobot/internal/hand"
)

// MaxSelection is the most cards the game lets a player select at once.
const MaxSelection = 5

// Action is what the planner wants done with the selected cards.
type Action int

const (
	Play Action = iota
	Discard
)

// String returns the action name the game protocol uses
func (a Action) String() string {
	switch a {
	case Play:
		return "PLAY_HAND"
	case Discard:
		return "DISCARD_HAND"
	default:
		return "UNKNOWN"
	}
}

// Config tunes the planner. It is passed explicitly to each planner rather
// than read from shared state.
type Config struct {
	// PlayAtLeast is the weakest category played straight away while
	// discards remain.
	PlayAtLeast hand.Category
	// MaxDiscard caps the cards thrown in one discard.
	MaxDiscard int
	// MaxPlay is the number of cards a weak hand is padded up to.
	MaxPlay int
}

// DefaultConfig returns the flush-hunting defaults.
func DefaultConfig() Config {
	return Config{
		PlayAtLeast: hand.Flush,
		MaxDiscard:  MaxSelection,
		MaxPlay:     MaxSelection,
	}
}

// Validate checks the config values are usable
func (c Config) Validate() error {
	if !slices.Contains(hand.Priority, c.PlayAtLeast) {
		return fmt.Errorf("play_at_least: %s is not a playable category", c.PlayAtLeast)
	}
	if c.MaxDiscard < 1 || c.MaxDiscard > MaxSelection {
		return fmt.Errorf("max_discard must be between 1 and %d, got %d", MaxSelection, c.MaxDiscard)
	}
	if c.MaxPlay < 1 || c.MaxPlay > MaxSelection {
		return fmt.Errorf("max_play must be between 1 and %d, got %d", MaxSelection, c.MaxPlay)
	}
	return nil
}

// Decision is the planner's answer for one hand.
type Decision struct {
	Action    Action
	Positions []int
	Category  hand.Category // category the played cards form, HighCard for discards
	Reason    string
}

// String returns a short description, e.g. "PLAY_HAND Flush [1 2 3 4 0]"
func (d Decision) String() string {
	return fmt.Sprintf("%s %s %v", d.Action, d.Category, d.Positions)
}

// Planner turns hands into play or discard decisions.
type Planner struct {
	cfg Config
}

// NewPlanner creates a planner. The config must be valid.
func NewPlanner(cfg Config) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid strategy config: %w", err)
	}
	return &Planner{cfg: cfg}, nil
}

// Config returns the planner's configuration.
func (p *Planner) Config() Config {
	return p.cfg
}

// Plan decides what to do with the hand given the discards left this round.
func (p *Planner) Plan(h hand.Hand, discardsLeft int) Decision {
	if h.Len() == 0 {
		return Decision{Action: Play, Category: hand.HighCard, Reason: "empty hand"}
	}

	strong, weak := p.split()
	for _, c := range strong {
		if pos := h.Find(c); len(pos) > 0 {
			return Decision{Action: Play, Positions: pos, Category: c, Reason: "holding " + c.String()}
		}
	}

	discards := p.DiscardCandidates(h)
	if discardsLeft > 0 && len(discards) > 0 {
		return Decision{
			Action:    Discard,
			Positions: discards,
			Category:  hand.HighCard,
			Reason:    "discarding least common suits",
		}
	}

	for _, c := range weak {
		pos := h.Find(c)
		if len(pos) == 0 {
			continue
		}
		reason := "no discards left, playing " + c.String()
		if len(pos) < p.cfg.MaxPlay {
			pos = pad(pos, discards, p.cfg.MaxPlay)
			reason += " with discards"
		}
		return Decision{Action: Play, Positions: pos, Category: c, Reason: reason}
	}

	if len(discards) == 0 {
		discards = positionsOf(lowestFirst(h.Cards()), p.cfg.MaxPlay)
	}
	return Decision{
		Action:    Play,
		Positions: discards,
		Category:  hand.HighCard,
		Reason:    "nothing to play, dumping discard candidates",
	}
}

// DiscardCandidates picks cards to throw away: the least common suit goes
// first, lowest ranks first, then the next least common, never touching the
// most common suit. Debuffed cards are candidates like any other.
func (p *Planner) DiscardCandidates(h hand.Hand) []int {
	tally := h.Tally(false)
	remaining := make([]card.Suit, 0, len(card.Suits))
	for _, s := range card.Suits {
		if tally.Suits[s] > 0 {
			remaining = append(remaining, s)
		}
	}

	sorted := lowestFirst(h.Cards())
	var out []int
	for len(out) < p.cfg.MaxDiscard && len(remaining) > 1 {
		least := 0
		for i, s := range remaining {
			if tally.Suits[s] < tally.Suits[remaining[least]] {
				least = i
			}
		}
		suit := remaining[least]
		remaining = slices.Delete(remaining, least, least+1)

		for _, c := range sorted {
			if c.Suit == suit && len(out) < p.cfg.MaxDiscard {
				out = append(out, c.Position)
			}
		}
	}
	return out
}

// split divides the priority order at the PlayAtLeast threshold.
func (p *Planner) split() (strong, weak []hand.Category) {
	for _, c := range hand.Priority {
		if c >= p.cfg.PlayAtLeast {
			strong = append(strong, c)
		} else {
			weak = append(weak, c)
		}
	}
	return strong, weak
}

// pad appends extra positions not already chosen until the selection holds n
// positions.
func pad(pos, extra []int, n int) []int {
	out := slices.Clone(pos)
	for _, e := range extra {
		if len(out) >= n {
			break
		}
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	return out
}

func lowestFirst(cards []card.Card) []card.Card {
	slices.SortStableFunc(cards, func(a, b card.Card) int {
		return a.Value() - b.Value()
	})
	return cards
}

func positionsOf(cards []card.Card, n int) []int {
	out := make([]int, 0, n)
	for _, c := range cards {
		if len(out) == n {
			break
		}
		out = append(out, c.Position)
	}
	return out
}
