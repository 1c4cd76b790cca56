package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/statusbox/internal/tui/theme"
)

// wideThemeRows is the terminal width from which hex values are printed
// next to the swatches.
const wideThemeRows = 72

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Long: `List the embedded themes with colour swatches for the background,
title, description, action and indicator dots.

The configured theme is marked with *.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printThemes(cmd.OutOrStdout(), a.config.UI.Theme, termWidth())
		},
	}
}

func printThemes(out io.Writer, current string, width int) error {
	fmt.Fprintln(out, formatHeader("Themes"))
	for _, name := range theme.Available() {
		t, err := theme.Load(name)
		if err != nil {
			return fmt.Errorf("loading theme %s: %w", name, err)
		}

		marker := "  "
		label := formatName(fmt.Sprintf("%-8s", name))
		if strings.EqualFold(name, current) {
			marker = "* "
			label = formatCurrent(fmt.Sprintf("%-8s", name))
		}

		colors := []string{t.Bg, t.TitleColor, t.DescriptionColor, t.ActionColor()}
		for _, c := range t.DotColors() {
			colors = append(colors, string(c))
		}

		swatches := make([]string, len(colors))
		for i, c := range colors {
			swatches[i] = swatch(c)
		}
		line := marker + label + " " + strings.Join(swatches, " ")
		if width >= wideThemeRows {
			line += "  " + formatMuted(strings.Join(colors, " "))
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
