package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/statusbox/internal/tui/indicator"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case indicator.TickMsg:
		// Ticks carry their indicator id, so every screen may see them.
		cmds := make([]tea.Cmd, 0, len(m.screens))
		for _, s := range m.screens {
			cmds = append(cmds, s.ctrl.Update(msg))
		}
		return m, tea.Batch(cmds...)

	case retryDoneMsg:
		return m, m.finishRetry(msg)
	}

	return m, m.screen().updateBody(msg)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	bodyHeight := max(height-headerHeight-footerHeight, 0)
	for _, s := range m.screens {
		s.setSize(width, height, bodyHeight)
	}
}
