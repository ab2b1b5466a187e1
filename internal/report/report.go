// Package report renders evaluation results for people (styled tables) and
// for tools (JSON files).
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/balatrobot/internal/batch"
	"github.com/lox/balatrobot/internal/card"
	"github.com/lox/balatrobot/internal/hand"
	"github.com/lox/balatrobot/internal/strategy"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
)

// SetColor turns styled output on or off for every renderer in the package.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Evaluation writes one row per category with the positions and cards that
// form it.
func Evaluation(w io.Writer, h hand.Hand, matches []hand.Match) error {
	fmt.Fprintf(w, "%s\n", headerStyle.Render("hand"))
	fmt.Fprintf(w, "%s\n\n", handStyle.Render(h.String()))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("positions"),
		headerStyle.Render("cards"))

	for _, m := range matches {
		if !m.Found() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n",
				categoryStyle.Render(m.Category.String()),
				missStyle.Render("-"),
				missStyle.Render("-"))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			categoryStyle.Render(m.Category.String()),
			matchStyle.Render(formatPositions(m.Positions)),
			matchStyle.Render(formatCards(cardsAt(h, m.Positions))))
	}
	return tw.Flush()
}

// Decision writes the planner's decision for a hand.
func Decision(w io.Writer, h hand.Hand, d strategy.Decision) error {
	_, err := fmt.Fprintf(w, "%s %s\n%s %s\n%s\n",
		actionStyle.Render(d.Action.String()),
		matchStyle.Render(formatPositions(d.Positions)),
		categoryStyle.Render(d.Category.String()),
		handStyle.Render(formatCards(cardsAt(h, d.Positions))),
		missStyle.Render(d.Reason))
	return err
}

// Summary writes how many hands reached each best category.
func Summary(w io.Writer, s batch.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("best"),
		headerStyle.Render("hands"),
		headerStyle.Render("share"))

	total := len(s.Results)
	categories := append(append([]hand.Category{}, hand.Priority...), hand.HighCard)
	for _, c := range categories {
		count := s.Counts[c]
		if count == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			categoryStyle.Render(c.String()),
			matchStyle.Render(fmt.Sprintf("%d", count)),
			matchStyle.Render(fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%d hands in %v\n", total, s.Elapsed.Truncate(time.Microsecond))
	return err
}

func cardsAt(h hand.Hand, positions []int) []card.Card {
	out := make([]card.Card, 0, len(positions))
	for _, p := range positions {
		if c, ok := h.Card(p); ok {
			out = append(out, c)
		}
	}
	return out
}

func formatCards(cards []card.Card) string {
	var parts []string
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func formatPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, ",")
}
