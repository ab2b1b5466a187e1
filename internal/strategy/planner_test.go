package strategy

import (
	"testing"

	"github.com/lox/balatrobot/internal/hand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T, cfg Config) *Planner {
	t.Helper()
	p, err := NewPlanner(cfg)
	require.NoError(t, err)
	return p
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"secret category", Config{PlayAtLeast: hand.FlushFive, MaxDiscard: 5, MaxPlay: 5}},
		{"high card", Config{PlayAtLeast: hand.HighCard, MaxDiscard: 5, MaxPlay: 5}},
		{"no discards", Config{PlayAtLeast: hand.Flush, MaxDiscard: 0, MaxPlay: 5}},
		{"too many played", Config{PlayAtLeast: hand.Flush, MaxDiscard: 5, MaxPlay: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
			_, err := NewPlanner(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestPlanPlaysStrongHands(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())

	tests := []struct {
		name     string
		cards    string
		category hand.Category
		expected []int
	}{
		{"royal flush", "Ah Kh Qh Jh 10h 2c", hand.RoyalFlush, []int{0, 1, 2, 3, 4}},
		{"four of a kind", "9h 9c 9s 9d 2c", hand.FourOfAKind, []int{0, 1, 2, 3}},
		{"full house", "Ah Ac As Kh Ks", hand.FullHouse, []int{0, 1, 2, 3, 4}},
		{"flush", "5h Qh Jh 10h 9h 7c", hand.Flush, []int{1, 2, 3, 4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := hand.Parse(tt.cards)
			require.NoError(t, err)

			d := p.Plan(h, 3)
			assert.Equal(t, Play, d.Action)
			assert.Equal(t, tt.category, d.Category)
			assert.Equal(t, tt.expected, d.Positions)
		})
	}
}

func TestPlanDiscardsLeastCommonSuits(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())

	// hearts: 4, spades: 2, clubs: 1, diamonds: 1
	h, err := hand.Parse("Ah Kh 9h 2h 7s 3s Qc 4d")
	require.NoError(t, err)

	d := p.Plan(h, 2)
	assert.Equal(t, Discard, d.Action)
	assert.Equal(t, hand.HighCard, d.Category)
	// clubs first (tie with diamonds broken by suit order), then diamonds,
	// then spades lowest first; hearts are kept
	assert.Equal(t, []int{6, 7, 5, 4}, d.Positions)
}

func TestDiscardCandidatesCap(t *testing.T) {
	p := newTestPlanner(t, Config{PlayAtLeast: hand.Flush, MaxDiscard: 2, MaxPlay: 5})

	h, err := hand.Parse("Ah Kh 9h 7s 3s 2s Qc Jc 4d")
	require.NoError(t, err)

	assert.Equal(t, []int{8, 7}, p.DiscardCandidates(h))
}

func TestDiscardCandidatesIncludeDebuffed(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())

	h, err := hand.Parse("Ah Kh 9h !Qc")
	require.NoError(t, err)

	assert.Equal(t, []int{3}, p.DiscardCandidates(h))
}

func TestPlanSingleSuitNeverDiscards(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())

	h, err := hand.Parse("Ah Kh 9h 2h")
	require.NoError(t, err)

	assert.Empty(t, p.DiscardCandidates(h))

	d := p.Plan(h, 3)
	assert.Equal(t, Play, d.Action)
	assert.Equal(t, hand.HighCard, d.Category)
	assert.Equal(t, []int{3, 2, 1, 0}, d.Positions)
}

func TestPlanWithoutDiscardsPadsWeakHand(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())

	h, err := hand.Parse("Ah Ac Kh 9h 7s 3s Qc 4d")
	require.NoError(t, err)

	d := p.Plan(h, 0)
	assert.Equal(t, Play, d.Action)
	assert.Equal(t, hand.Pair, d.Category)
	// pair of aces padded with the diamond, the queen of clubs and the lowest
	// spade; the ace of clubs is already in the pair
	assert.Equal(t, []int{0, 1, 7, 6, 5}, d.Positions)
}

func TestPlanWithoutDiscardsPlaysStraight(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())

	h, err := hand.Parse("9h 8c 7d 6s 5h 2c")
	require.NoError(t, err)

	d := p.Plan(h, 0)
	assert.Equal(t, Play, d.Action)
	assert.Equal(t, hand.Straight, d.Category)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, d.Positions)
}

func TestPlanLowerThreshold(t *testing.T) {
	p := newTestPlanner(t, Config{PlayAtLeast: hand.Pair, MaxDiscard: 5, MaxPlay: 5})

	h, err := hand.Parse("Ah Ac Kh 9h 7s")
	require.NoError(t, err)

	d := p.Plan(h, 3)
	assert.Equal(t, Play, d.Action)
	assert.Equal(t, hand.Pair, d.Category)
	assert.Equal(t, []int{0, 1}, d.Positions)
}

func TestPlanNothingToPlay(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())

	h, err := hand.Parse("Ah Kc 9h 7s 3d 2c")
	require.NoError(t, err)

	d := p.Plan(h, 0)
	assert.Equal(t, Play, d.Action)
	assert.Equal(t, hand.HighCard, d.Category)
	assert.Equal(t, p.DiscardCandidates(h), d.Positions)
}

func TestPlanEmptyHand(t *testing.T) {
	p := newTestPlanner(t, DefaultConfig())
	d := p.Plan(hand.MustNew(), 3)
	assert.Equal(t, Play, d.Action)
	assert.Empty(t, d.Positions)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "PLAY_HAND", Play.String())
	assert.Equal(t, "DISCARD_HAND", Discard.String())
	assert.Equal(t, "UNKNOWN", Action(7).String())

	d := Decision{Action: Play, Category: hand.Pair, Positions: []int{0, 1}}
	assert.Equal(t, "PLAY_HAND Pair [0 1]", d.String())
}
