package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/statusbox/internal/status"
)

// Label is a line of text with its own visibility and style.
type Label struct {
	Text   string
	Hidden bool
	Style  lipgloss.Style
	Wrap   bool // Wrap long text instead of truncating it
}

func (l Label) render(maxWidth int) string {
	if l.Hidden {
		return ""
	}
	style := l.Style.Align(lipgloss.Center)
	if maxWidth > 0 && lipgloss.Width(l.Text) > maxWidth {
		if l.Wrap {
			style = style.Width(maxWidth)
		} else {
			style = style.MaxWidth(maxWidth)
		}
	}
	return style.Render(l.Text)
}

// Button is the action control. It renders its title in brackets.
type Button struct {
	Title  string
	Hidden bool
	Style  lipgloss.Style
}

func (b Button) render(maxWidth int) string {
	if b.Hidden {
		return ""
	}
	style := b.Style
	if maxWidth > 0 {
		style = style.MaxWidth(maxWidth)
	}
	return style.Render("[ " + b.Title + " ]")
}

// ImageSlot shows an image verbatim.
type ImageSlot struct {
	Image  status.Image
	Hidden bool
}

func (s ImageSlot) render(maxWidth int) string {
	if s.Hidden {
		return ""
	}
	style := lipgloss.NewStyle()
	if maxWidth > 0 {
		style = style.MaxWidth(maxWidth)
	}
	return style.Render(string(s.Image))
}

// stack centres the non-empty items vertically with spacing blank lines
// between them.
func stack(spacing int, items ...string) string {
	visible := make([]string, 0, len(items)*2)
	for _, item := range items {
		if item == "" {
			continue
		}
		if len(visible) > 0 && spacing > 0 {
			visible = append(visible, strings.Repeat("\n", spacing-1))
		}
		visible = append(visible, item)
	}
	if len(visible) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Center, visible...)
}
