package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lox/balatrobot/internal/batch"
	"github.com/lox/balatrobot/internal/report"
)

// BatchCmd evaluates a file of hands with a pool of workers.
type BatchCmd struct {
	File    string `arg:"" name:"file" help:"File with one hand per line, or - for stdin"`
	Workers int    `short:"w" help:"Parallel workers (overrides config)"`
	Out     string `short:"o" help:"Write a JSON report to this path"`
}

func (cmd *BatchCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cmd.run(ctx, g, os.Stdin, os.Stdout)
}

func (cmd *BatchCmd) run(ctx context.Context, g *Globals, stdin io.Reader, w io.Writer) error {
	e, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}

	in := stdin
	if cmd.File != "-" {
		f, err := os.Open(filepath.Clean(cmd.File))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	hands, err := batch.ReadHands(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cmd.File, err)
	}

	workers := e.cfg.Batch.Workers
	if cmd.Workers > 0 {
		workers = cmd.Workers
	}
	e.logger.Info("Starting batch", "file", cmd.File, "hands", len(hands), "workers", workers)

	runner := batch.NewRunner(batch.WithWorkers(workers), batch.WithLogger(e.logger))
	summary, err := runner.Run(ctx, hands)
	if err != nil {
		return err
	}

	if err := report.Summary(w, summary); err != nil {
		return err
	}

	if cmd.Out == "" {
		return nil
	}
	data, err := report.MarshalSummary(summary)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := report.WriteFileAtomic(cmd.Out, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	e.logger.Info("Wrote report", "path", cmd.Out)
	return nil
}
