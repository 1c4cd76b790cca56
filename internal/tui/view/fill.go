package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Fill places content top-left in a width x height box. Short lines and
// missing rows are padded with bg; long lines and extra rows are cut.
func Fill(content string, width, height int, bg lipgloss.TerminalColor) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	pad := lipgloss.NewStyle()
	if bg != nil {
		pad = pad.Background(bg)
	}

	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Truncate(line, width, "")
		case w < width:
			lines[i] = line + pad.Render(strings.Repeat(" ", width-w))
		}
	}
	return strings.Join(lines, "\n")
}
