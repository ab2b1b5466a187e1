// Package batch evaluates many hands concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/balatrobot/internal/hand"
)

// Result is the evaluation of one hand.
type Result struct {
	Index   int
	Hand    hand.Hand
	Best    hand.Match
	Matches []hand.Match
}

// Summary collects the results of a run in input order.
type Summary struct {
	Results []Result
	Counts  map[hand.Category]int // hands per best category
	Elapsed time.Duration
}

// Runner evaluates hands with a bounded number of workers.
type Runner struct {
	workers int
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures a Runner
type Option func(*Runner)

// WithWorkers sets the number of hands evaluated in parallel
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithClock sets the clock used to time runs
func WithClock(clock quartz.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// NewRunner creates a runner with four workers, a discarding logger and the
// real clock unless overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers: 4,
		logger:  log.New(io.Discard),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every hand. Results keep the input order. Cancelling the
// context stops hands not yet started and returns the context error.
func (r *Runner) Run(ctx context.Context, hands []hand.Hand) (Summary, error) {
	start := r.clock.Now()
	results := make([]Result, len(hands))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, h := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches := h.Evaluate()
			best := hand.Match{Category: hand.HighCard}
			for _, m := range matches {
				if m.Found() {
					best = m
					break
				}
			}
			results[i] = Result{Index: i, Hand: h, Best: best, Matches: matches}
			r.logger.Debug("Evaluated hand", "index", i, "hand", h.String(), "best", best.Category, "positions", best.Positions)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("batch evaluation: %w", err)
	}

	summary := Summary{
		Results: results,
		Counts:  make(map[hand.Category]int),
		Elapsed: r.clock.Since(start),
	}
	for _, res := range results {
		summary.Counts[res.Best.Category]++
	}

	r.logger.Info("Batch complete", "hands", len(hands), "workers", r.workers, "elapsed", summary.Elapsed)
	return summary, nil
}

// ReadHands reads one hand per line in card notation. Blank lines and lines
// starting with '#' are skipped.
func ReadHands(rd io.Reader) ([]hand.Hand, error) {
	var hands []hand.Hand
	scanner := bufio.NewScanner(rd)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		h, err := hand.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		hands = append(hands, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hands: %w", err)
	}
	return hands, nil
}
