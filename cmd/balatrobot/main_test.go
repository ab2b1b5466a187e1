package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lox/balatrobot/internal/config"
	"github.com/lox/balatrobot/internal/hand"
	"github.com/lox/balatrobot/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGlobals(t *testing.T) *Globals {
	t.Helper()
	return &Globals{
		Config:  filepath.Join(t.TempDir(), "missing.hcl"),
		NoColor: true,
	}
}

func TestEvalTable(t *testing.T) {
	var out bytes.Buffer
	cmd := EvalCmd{Cards: []string{"Ah", "Ac", "Kc"}}
	require.NoError(t, cmd.run(testGlobals(t), &out))

	assert.Contains(t, out.String(), "A♥ A♣ K♣")
	assert.Contains(t, out.String(), "0,1")
}

func TestEvalJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := EvalCmd{Cards: []string{"5h", "Qh", "Jh", "10h", "9h", "7c"}, JSON: true}
	require.NoError(t, cmd.run(testGlobals(t), &out))

	var decoded report.HandJSON
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, hand.Flush.String(), decoded.Best.Category)
	assert.Equal(t, []int{1, 2, 3, 4, 0}, decoded.Best.Positions)
}

func TestEvalRejectsBadCards(t *testing.T) {
	cmd := EvalCmd{Cards: []string{"Ah", "Zz"}}
	err := cmd.run(testGlobals(t), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing hand")

	cmd = EvalCmd{Cards: []string{"0:Ah", "0:Kh"}}
	assert.ErrorIs(t, cmd.run(testGlobals(t), &bytes.Buffer{}), hand.ErrInvalidHand)
}

func TestPlan(t *testing.T) {
	cards := strings.Fields("Ah Kh 9h 2h 7s 3s Qc 4d")

	var out bytes.Buffer
	cmd := PlanCmd{Cards: cards, Discards: 3}
	require.NoError(t, cmd.run(testGlobals(t), &out))
	assert.True(t, strings.HasPrefix(out.String(), "DISCARD_HAND 6,7,5,4"), out.String())
}

func TestPlanReadsStrategyFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balatrobot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy {
  play_at_least = "Pair"
}
`), 0o644))

	g := &Globals{Config: path, NoColor: true}
	var out bytes.Buffer
	cmd := PlanCmd{Cards: strings.Fields("Ah Ac Kh 9h 7s 3s Qc 4d"), Discards: 3}
	require.NoError(t, cmd.run(g, &out))
	assert.True(t, strings.HasPrefix(out.String(), "PLAY_HAND 0,1\n"), out.String())
}

func TestLogLevelOverride(t *testing.T) {
	g := testGlobals(t)
	g.LogLevel = "loud"
	cmd := EvalCmd{Cards: []string{"Ah"}}
	assert.Error(t, cmd.run(g, &bytes.Buffer{}))
}

func TestDealIsDeterministic(t *testing.T) {
	run := func() string {
		var out bytes.Buffer
		cmd := DealCmd{Seed: 42, Size: 8}
		require.NoError(t, cmd.run(testGlobals(t), &out))
		return out.String()
	}
	assert.Equal(t, run(), run())
}

func TestDealDebuff(t *testing.T) {
	var out bytes.Buffer
	cmd := DealCmd{Seed: 7, Size: 52, Debuff: "hearts"}
	require.NoError(t, cmd.run(testGlobals(t), &out))
	assert.Contains(t, out.String(), "[A♥]")

	cmd = DealCmd{Seed: 7, Size: 8, Debuff: "Stars"}
	assert.Error(t, cmd.run(testGlobals(t), &bytes.Buffer{}))
}

func TestDealTooManyCards(t *testing.T) {
	cmd := DealCmd{Seed: 1, Size: 53}
	assert.Error(t, cmd.run(testGlobals(t), &bytes.Buffer{}))
}

func TestBatchWritesReport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hands.txt")
	require.NoError(t, os.WriteFile(input, []byte("Ah Ac Kc\n# skipped\nAh Ac As Kh Ks\n"), 0o644))
	outPath := filepath.Join(dir, "report.json")

	var out bytes.Buffer
	cmd := BatchCmd{File: input, Workers: 2, Out: outPath}
	require.NoError(t, cmd.run(context.Background(), testGlobals(t), strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "2 hands in")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var decoded report.SummaryJSON
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Hands, 2)
	assert.Equal(t, hand.Pair.String(), decoded.Hands[0].Best.Category)
	assert.Equal(t, hand.FullHouse.String(), decoded.Hands[1].Best.Category)
}

func TestBatchReadsStdin(t *testing.T) {
	var out bytes.Buffer
	cmd := BatchCmd{File: "-"}
	require.NoError(t, cmd.run(context.Background(), testGlobals(t), strings.NewReader("Ah Ac Kc\n"), &out))
	assert.Contains(t, out.String(), "1 hands in")
}

func TestBatchMissingFile(t *testing.T) {
	cmd := BatchCmd{File: filepath.Join(t.TempDir(), "nope.txt")}
	assert.Error(t, cmd.run(context.Background(), testGlobals(t), nil, &bytes.Buffer{}))
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, &config.LogSettings{Level: "info", JSON: true})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "hands", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"hands":3`)
}
