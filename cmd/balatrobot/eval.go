package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/balatrobot/internal/hand"
	"github.com/lox/balatrobot/internal/report"
	"github.com/lox/balatrobot/internal/strategy"
)

// EvalCmd prints every category the hand can form.
type EvalCmd struct {
	Cards []string `arg:"" name:"cards" help:"Cards in slot order, e.g. Ah Ac !Kc 7:Qs"`
	JSON  bool     `help:"Print JSON instead of a table"`
}

func (cmd *EvalCmd) Run(g *Globals) error {
	return cmd.run(g, os.Stdout)
}

func (cmd *EvalCmd) run(g *Globals, w io.Writer) error {
	e, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}

	h, err := parseArgs(cmd.Cards)
	if err != nil {
		return err
	}
	matches := h.Evaluate()
	e.logger.Debug("Evaluated hand", "hand", h.String(), "best", h.Best().Category)

	if cmd.JSON {
		data, err := report.MarshalHand(h, matches)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return report.Evaluation(w, h, matches)
}

// PlanCmd prints the planner's decision for a hand.
type PlanCmd struct {
	Cards    []string `arg:"" name:"cards" help:"Cards in slot order, e.g. Ah Ac !Kc 7:Qs"`
	Discards int      `short:"d" default:"0" help:"Discards left this round"`
}

func (cmd *PlanCmd) Run(g *Globals) error {
	return cmd.run(g, os.Stdout)
}

func (cmd *PlanCmd) run(g *Globals, w io.Writer) error {
	e, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}

	h, err := parseArgs(cmd.Cards)
	if err != nil {
		return err
	}

	sc, err := e.cfg.StrategyConfig()
	if err != nil {
		return err
	}
	planner, err := strategy.NewPlanner(sc)
	if err != nil {
		return err
	}

	decision := planner.Plan(h, cmd.Discards)
	e.logger.Debug("Planned", "hand", h.String(), "discards", cmd.Discards, "decision", decision.String())
	return report.Decision(w, h, decision)
}

func parseArgs(args []string) (hand.Hand, error) {
	h, err := hand.Parse(strings.Join(args, " "))
	if err != nil {
		return hand.Hand{}, fmt.Errorf("parsing hand: %w", err)
	}
	return h, nil
}
