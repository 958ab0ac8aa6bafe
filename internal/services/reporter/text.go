package reporter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/lprange/internal/domain"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning   = lipgloss.AdaptiveColor{Light: "#D2455C", Dark: "#F25D94"}
)

const labelWidth = 15

type textReporter struct {
	precision int32
}

// Report renders a bordered block. Styles are bound to w, so colours are
// dropped when w is not a terminal.
func (r *textReporter) Report(w io.Writer, e domain.Estimate) error {
	renderer := lipgloss.NewRenderer(w)

	titleStyle := renderer.NewStyle().
		Bold(true).
		Foreground(highlight).
		MarginBottom(1)
	labelStyle := renderer.NewStyle().
		Foreground(subtle).
		Width(labelWidth)
	valueStyle := renderer.NewStyle().Bold(true)
	boxStyle := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlight).
		Padding(0, 1)

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
	}

	bound := func(v float64) string {
		s := valueStyle.Render(formatRounded(v, r.precision))
		if pct, ok := offsetPercent(v, e.CurrentPrice); ok {
			offsetStyle := renderer.NewStyle().Foreground(special)
			if v < e.CurrentPrice {
				offsetStyle = offsetStyle.Foreground(warning)
			}
			s += " " + offsetStyle.Render("("+pct+")")
		}
		return s
	}

	block := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("LP POSITION"),
		row("Sentiment", valueStyle.Render(e.Sentiment.Title())),
		row("Timeframe", valueStyle.Render(e.Timeframe.Title())+
			fmt.Sprintf(" (%s, r = %s)", e.Timeframe.Code(), formatExact(e.Multiplier))),
		row("Current price", valueStyle.Render(formatRounded(e.CurrentPrice, r.precision))),
		"",
		row("Min price", bound(e.Position.MinPrice)),
		row("Max price", bound(e.Position.MaxPrice)),
	)

	if _, err := fmt.Fprintln(w, boxStyle.Render(block)); err != nil {
		return errors.Wrap(err, "write text report")
	}
	return nil
}
