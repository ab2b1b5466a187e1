package report

import (
	"encoding/json"

	"github.com/lox/balatrobot/internal/batch"
	"github.com/lox/balatrobot/internal/hand"
)

// CardJSON is the JSON form of a held card.
type CardJSON struct {
	Position int    `json:"position"`
	Key      string `json:"key"`
	Debuffed bool   `json:"debuffed,omitempty"`
}

// MatchJSON is the JSON form of one category result.
type MatchJSON struct {
	Category  string `json:"category"`
	Positions []int  `json:"positions"`
}

// HandJSON is the JSON form of one evaluated hand.
type HandJSON struct {
	Index   int         `json:"index"`
	Cards   []CardJSON  `json:"cards"`
	Best    MatchJSON   `json:"best"`
	Matches []MatchJSON `json:"matches,omitempty"`
}

// SummaryJSON is the JSON form of a batch run.
type SummaryJSON struct {
	Hands     []HandJSON     `json:"hands"`
	Counts    map[string]int `json:"counts"`
	ElapsedMS float64        `json:"elapsed_ms"`
}

// NewHandJSON converts a hand and its category results. Categories that
// cannot be formed are left out.
func NewHandJSON(index int, h hand.Hand, matches []hand.Match) HandJSON {
	out := HandJSON{Index: index, Best: MatchJSON{Category: hand.HighCard.String(), Positions: []int{}}}
	for _, c := range h.Cards() {
		out.Cards = append(out.Cards, CardJSON{Position: c.Position, Key: c.Key(), Debuffed: c.Debuffed})
	}
	for _, m := range matches {
		if !m.Found() {
			continue
		}
		mj := MatchJSON{Category: m.Category.String(), Positions: m.Positions}
		if len(out.Matches) == 0 {
			out.Best = mj
		}
		out.Matches = append(out.Matches, mj)
	}
	return out
}

// MarshalSummary encodes a batch summary as indented JSON.
func MarshalSummary(s batch.Summary) ([]byte, error) {
	out := SummaryJSON{
		Hands:     make([]HandJSON, 0, len(s.Results)),
		Counts:    make(map[string]int, len(s.Counts)),
		ElapsedMS: float64(s.Elapsed.Microseconds()) / 1000,
	}
	for _, res := range s.Results {
		out.Hands = append(out.Hands, NewHandJSON(res.Index, res.Hand, res.Matches))
	}
	for c, n := range s.Counts {
		out.Counts[c.String()] = n
	}
	return json.MarshalIndent(out, "", "  ")
}

// MarshalHand encodes a single evaluation as indented JSON.
func MarshalHand(h hand.Hand, matches []hand.Match) ([]byte, error) {
	return json.MarshalIndent(NewHandJSON(0, h, matches), "", "  ")
}
