package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/statusbox/internal/debuglog"
)

// logKeyPress records a keystroke with the screen state it landed on.
func (m *Model) logKeyPress(msg tea.KeyMsg) {
	if !m.log.Enabled() {
		return
	}
	s := m.screen()
	m.log.Log(debuglog.EventKeyPress, map[string]any{
		"key":        msg.String(),
		"type":       msg.Type.String(),
		"alt":        msg.Alt,
		"screen":     s.kind.String(),
		"background": s.useBackground,
		"overlay":    s.ctrl.Current() != nil,
		"focused":    s.focused,
		"selected":   s.selected(),
	})
}
