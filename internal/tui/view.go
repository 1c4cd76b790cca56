package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/statusbox/internal/tui/view"
)

// View renders the active screen. The body is composited with the
// background surface and the whole frame with the root surface; a surface
// without an overlay passes its frame through.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	s := m.screen()
	bodyHeight := max(m.height-headerHeight-footerHeight, 0)

	body := view.Fill(s.bodyView(), m.width, bodyHeight, nil)
	body = s.body.Render(body)

	frame := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
	return s.root.Render(frame)
}

func (m *Model) renderHeader() string {
	s := m.screen()
	target := "root"
	if s.useBackground {
		target = "background"
	}
	text := fmt.Sprintf("statusbox · %s screen · overlay on %s · theme %s",
		s.kind, target, m.themes.Default().Name)
	return m.styles.HeaderStyle.Width(m.width).MaxWidth(m.width).Render(text)
}

func (m *Model) renderFooter() string {
	if m.statusMsg != "" {
		return m.styles.StatusMsgStyle.MaxWidth(m.width).Render(m.statusMsg)
	}

	bindings := []key.Binding{m.keys.Show, m.keys.Hide, m.keys.Start, m.keys.Stop}
	if m.screen().focused {
		bindings = append(bindings, m.keys.Press, m.keys.Copy)
	}
	bindings = append(bindings, m.keys.CycleTheme, m.keys.Restyle, m.keys.Background, m.keys.Switch, m.keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.FooterKeyStyle.Render(h.Key)+" "+h.Desc)
	}
	return m.styles.FooterStyle.MaxWidth(m.width).Render(strings.Join(parts, "  "))
}
