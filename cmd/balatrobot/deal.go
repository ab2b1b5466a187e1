package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/balatrobot/internal/card"
	"github.com/lox/balatrobot/internal/deck"
	"github.com/lox/balatrobot/internal/hand"
	"github.com/lox/balatrobot/internal/report"
)

// DealCmd deals a hand from a seeded deck and evaluates it.
type DealCmd struct {
	Seed   int64  `short:"s" default:"1" help:"Shuffle seed"`
	Size   int    `short:"n" default:"8" help:"Number of cards to deal"`
	Debuff string `help:"Debuff every card of this suit (Clubs, Spades, Hearts, Diamonds)"`
}

func (cmd *DealCmd) Run(g *Globals) error {
	return cmd.run(g, os.Stdout)
}

func (cmd *DealCmd) run(g *Globals, w io.Writer) error {
	e, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}

	cards := deck.New(cmd.Seed).Deal(cmd.Size)
	if cards == nil {
		return fmt.Errorf("cannot deal %d cards from a %d card deck", cmd.Size, deck.Size)
	}

	if cmd.Debuff != "" {
		suit, err := card.ParseSuitName(cmd.Debuff)
		if err != nil {
			return err
		}
		cards = deck.Debuff(cards, suit)
	}

	h, err := hand.New(cards...)
	if err != nil {
		return err
	}
	e.logger.Info("Dealt hand", "seed", cmd.Seed, "size", cmd.Size, "hand", h.String())
	return report.Evaluation(w, h, h.Evaluate())
}
