package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/statusbox/internal/debuglog"
	"github.com/javiermolinar/statusbox/internal/tui/theme"
)

// KeyMap holds the demo key bindings.
type KeyMap struct {
	Show       key.Binding
	Hide       key.Binding
	Start      key.Binding
	Stop       key.Binding
	CycleTheme key.Binding
	Restyle    key.Binding
	Copy       key.Binding
	Press      key.Binding
	Background key.Binding
	Switch     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the demo key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Show:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show")),
		Hide:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide")),
		Start:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Stop:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		CycleTheme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Restyle:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "restyle")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Press:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "action")),
		Background: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "background")),
		Switch:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "screen")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	m.logKeyPress(msg)
	s := m.screen()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Switch):
		m.switchScreen()
	case key.Matches(msg, m.keys.Show):
		return m.showSelected()
	case key.Matches(msg, m.keys.Hide):
		s.ctrl.Hide()
		s.focused = false
	case key.Matches(msg, m.keys.Start):
		return m.startIndicator()
	case key.Matches(msg, m.keys.Stop):
		m.stopIndicator()
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Restyle):
		m.restyleCurrent()
	case key.Matches(msg, m.keys.Copy):
		m.copyStatus()
	case key.Matches(msg, m.keys.Background):
		return s.toggleBackground()
	case key.Matches(msg, m.keys.Press):
		return m.press(msg)
	default:
		return s.updateBody(msg)
	}
	return nil
}

func (m *Model) switchScreen() {
	from := m.screen().kind
	m.active = (m.active + 1) % len(m.screens)
	m.statusMsg = ""
	m.log.Log(debuglog.EventScreenChange, map[string]any{
		"from": from.String(),
		"to":   m.screen().kind.String(),
	})
}

func (m *Model) showSelected() tea.Cmd {
	s := m.screen()
	i := s.selected()
	if i < 0 || i >= len(m.items) {
		return nil
	}
	m.statusMsg = ""
	return s.ctrl.Show(m.items[i].build(m))
}

func (m *Model) startIndicator() tea.Cmd {
	sv, ok := m.screen().currentView()
	if !ok {
		m.statusMsg = "No overlay"
		return nil
	}
	m.log.Log(debuglog.EventIndicatorStart, map[string]any{"id": sv.Indicator().ID()})
	return sv.Indicator().Start()
}

func (m *Model) stopIndicator() {
	sv, ok := m.screen().currentView()
	if !ok {
		m.statusMsg = "No overlay"
		return
	}
	sv.Indicator().Stop()
	m.log.Log(debuglog.EventIndicatorStop, map[string]any{"id": sv.Indicator().ID()})
}

// cycleTheme changes the registry default. Overlays already shown keep
// their theme until restyled.
func (m *Model) cycleTheme() {
	name := theme.Next(m.themes.Default().Name)
	t, err := theme.Load(name)
	if err != nil {
		m.statusMsg = "Error: " + err.Error()
		return
	}
	m.themes.SetDefault(t)
	m.styles = NewStyles(t)
	for _, s := range m.screens {
		s.setBackground(theme.Color(t.Bg))
	}
	m.statusMsg = "Theme: " + t.Name
	m.log.Log(debuglog.EventThemeChange, map[string]any{"theme": t.Name})
}

func (m *Model) restyleCurrent() {
	sv, ok := m.screen().currentView()
	if !ok {
		m.statusMsg = "No overlay"
		return
	}
	t := m.themes.Default()
	sv.SetTheme(t)
	m.statusMsg = "Restyled with " + t.Name
}

func (m *Model) copyStatus() {
	sv, ok := m.screen().currentView()
	if !ok || sv.Status() == nil {
		m.statusMsg = "No overlay"
		return
	}
	text := sv.Status().Text()
	if text == "" {
		m.statusMsg = "Nothing to copy"
		return
	}
	if err := m.copyText(text); err != nil {
		m.statusMsg = "Error: " + err.Error()
		return
	}
	m.statusMsg = "Copied to clipboard"
}

// press hands the key to the overlay. Commands queued by its action run
// alongside whatever the overlay returns.
func (m *Model) press(msg tea.KeyMsg) tea.Cmd {
	s := m.screen()
	if !s.focused {
		return nil
	}
	cmd := s.ctrl.Update(msg)
	cmds := append(m.pending, cmd)
	m.pending = nil
	return tea.Batch(cmds...)
}

// retry is the error scenario's action: show loading now, an empty state
// once the delay passes.
func (m *Model) retry() {
	s := m.screen()
	kind := s.kind
	m.pending = append(m.pending,
		s.ctrl.Show(retryLoadingStatus()),
		tea.Tick(m.retryDelay, func(time.Time) tea.Msg {
			return retryDoneMsg{screen: kind}
		}),
	)
}

func (m *Model) finishRetry(msg retryDoneMsg) tea.Cmd {
	s := m.screenOf(msg.screen)
	sv, ok := s.currentView()
	if !ok || sv.Status() == nil || !sv.Status().Loading {
		return nil
	}
	return s.ctrl.Show(retryDoneStatus())
}
