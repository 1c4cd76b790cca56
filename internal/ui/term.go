package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/statusbox/internal/tui/theme"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Current selection: bold green
	colorCurrent = color.New(color.FgGreen, color.Bold)

	// Keys and names: cyan
	colorName = color.New(color.FgCyan)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// swatch renders a two-cell block in the given hex colour. Unparseable
// colours render as blanks.
func swatch(hex string) string {
	r, g, b, ok := theme.RGB(hex)
	if !ok {
		return "  "
	}
	return color.BgRGB(r, g, b).Sprint("  ")
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatCurrent(s string) string {
	return colorCurrent.Sprint(s)
}

func formatName(s string) string {
	return colorName.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
