package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/statusbox/internal/tui/theme"
)

// Styles holds the lipgloss styles for the demo chrome, derived from a theme.
type Styles struct {
	HeaderStyle    lipgloss.Style
	FooterStyle    lipgloss.Style
	FooterKeyStyle lipgloss.Style
	StatusMsgStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t theme.Theme) Styles {
	bg := theme.Color(t.Bg)
	accent := theme.Color(t.ActionColor())
	return Styles{
		HeaderStyle: t.TitleFont.Apply(lipgloss.NewStyle()).
			Foreground(theme.Color(t.TitleColor)).
			Background(bg).
			Padding(0, 1),
		FooterStyle: lipgloss.NewStyle().
			Foreground(theme.Color(t.DescriptionColor)).
			Padding(0, 1),
		FooterKeyStyle: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		StatusMsgStyle: lipgloss.NewStyle().
			Foreground(accent).
			Padding(0, 1),
	}
}
