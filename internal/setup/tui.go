// Package setup prompts for calculator inputs in the terminal.
package setup

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/lprange/internal/domain"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
)

// RunTUI asks for every positional input missing from args and returns the
// completed price, sentiment and timeframe. Inputs already present are kept
// as they are and still validated later by domain.ParseInput.
// The prompt is drawn on w so that stdout carries only the report.
func RunTUI(w io.Writer, args []string) ([]string, error) {
	values := padArgs(args)
	fields := Fields(values, len(args))
	if len(fields) == 0 {
		return values, nil
	}

	printHeader(w)

	if err := huh.NewForm(huh.NewGroup(fields...)).WithOutput(w).Run(); err != nil {
		return nil, errors.Wrap(err, "input prompt")
	}

	return values, nil
}

func printHeader(w io.Writer) {
	r := lipgloss.NewRenderer(w)
	headerStyle := r.NewStyle().
		Foreground(lipgloss.Color("205")).
		Background(highlight).
		Padding(0, 2).
		Bold(true).
		MarginBottom(1)

	fmt.Fprintln(w, headerStyle.Render("LP RANGE"))
	fmt.Fprintln(w, r.NewStyle().Foreground(subtle).Render("Fill in the missing inputs.\n"))
}

// Fields builds form fields for the inputs at index provided and beyond.
// The fields write into values, which must hold three elements.
func Fields(values []string, provided int) []huh.Field {
	var fields []huh.Field

	if provided <= 0 {
		fields = append(fields, huh.NewInput().
			Title("Current price").
			Description("Floating-point number, e.g. 1850.25").
			Value(&values[0]).
			Validate(validatePrice))
	}

	if provided <= 1 {
		if values[1] == "" {
			values[1] = domain.SentimentNeutral.String()
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Market sentiment").
			Options(SentimentOptions()...).
			Value(&values[1]))
	}

	if provided <= 2 {
		if values[2] == "" {
			values[2] = domain.TimeframeDay.String()
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Timeframe").
			Options(TimeframeOptions()...).
			Value(&values[2]))
	}

	return fields
}

// SentimentOptions select options for every sentiment.
func SentimentOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.Sentiments()))
	for _, s := range domain.Sentiments() {
		options = append(options, huh.NewOption(s.Title(), s.String()))
	}
	return options
}

// TimeframeOptions select options for every timeframe.
func TimeframeOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.Timeframes()))
	for _, tf := range domain.Timeframes() {
		options = append(options, huh.NewOption(tf.Title(), tf.String()))
	}
	return options
}

func validatePrice(s string) error {
	if _, err := domain.ParsePrice(s); err != nil {
		return fmt.Errorf("must be a valid number")
	}
	return nil
}

// padArgs returns a copy of args with exactly three elements.
func padArgs(args []string) []string {
	values := make([]string, 3)
	copy(values, args)
	return values
}
