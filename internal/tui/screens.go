package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/statusbox/internal/status"
	"github.com/javiermolinar/statusbox/internal/tui/controller"
	"github.com/javiermolinar/statusbox/internal/tui/surface"
	"github.com/javiermolinar/statusbox/internal/tui/view"
)

// screenKind identifies a demo screen.
type screenKind int

const (
	screenList screenKind = iota
	screenGrid
)

func (k screenKind) String() string {
	if k == screenGrid {
		return "grid"
	}
	return "list"
}

// screen is one host for the status overlay: a root surface covering the
// whole frame and a background surface covering the body below the header.
type screen struct {
	kind          screenKind
	root          *surface.Surface
	body          *surface.Surface
	useBackground bool
	focused       bool // overlay owns the action key
	ctrl          *controller.Controller

	list  list.Model
	table table.Model
}

func newScreen(kind screenKind, items []scenario, surfaceOpts []surface.Option) *screen {
	s := &screen{
		kind:          kind,
		root:          surface.New(append([]surface.Option{surface.WithName(kind.String() + "-root")}, surfaceOpts...)...),
		body:          surface.New(append([]surface.Option{surface.WithName(kind.String() + "-body")}, surfaceOpts...)...),
		useBackground: true,
	}

	switch kind {
	case screenGrid:
		s.table = newScenarioTable(items)
	default:
		s.list = newScenarioList(items)
	}
	return s
}

func newScenarioList(items []scenario) list.Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	l := list.New(listItems, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Scenarios"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newScenarioTable(items []scenario) table.Model {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		rows[i] = table.Row{it.name, it.about}
	}
	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Scenario", Width: 16},
			{Title: "Shows", Width: 40},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
	)
}

// host describes the screen to the controller. Without the background the
// controller falls back to the root surface.
func (s *screen) host() controller.Host {
	var bg *surface.Surface
	if s.useBackground {
		bg = s.body
	}
	if s.kind == screenGrid {
		return controller.GridScreen{Root: s.root, Background: bg}
	}
	return controller.ListScreen{Root: s.root, Background: bg}
}

// selected returns the index of the highlighted scenario.
func (s *screen) selected() int {
	if s.kind == screenGrid {
		return s.table.Cursor()
	}
	return s.list.Index()
}

func (s *screen) setSize(width, height, bodyHeight int) {
	s.root.SetSize(width, height)
	s.body.SetSize(width, bodyHeight)
	if s.kind == screenGrid {
		s.table.SetWidth(width)
		s.table.SetHeight(bodyHeight)
		return
	}
	s.list.SetSize(width, bodyHeight)
}

func (s *screen) setBackground(c lipgloss.Color) {
	s.root.SetBackground(c)
	s.body.SetBackground(c)
}

// toggleBackground moves the current overlay between body and root.
func (s *screen) toggleBackground() tea.Cmd {
	var current *status.Status
	if sv, ok := s.ctrl.CurrentView(); ok {
		current = sv.Status()
	}
	s.ctrl.Hide()
	s.focused = false
	s.useBackground = !s.useBackground
	s.ctrl.SetHost(s.host())
	if current == nil {
		return nil
	}
	return s.ctrl.Show(*current)
}

func (s *screen) currentView() (*view.StatusView, bool) {
	return s.ctrl.CurrentView()
}

// updateBody forwards navigation to the list or table.
func (s *screen) updateBody(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.kind == screenGrid {
		s.table, cmd = s.table.Update(msg)
	} else {
		s.list, cmd = s.list.Update(msg)
	}
	return cmd
}

func (s *screen) bodyView() string {
	if s.kind == screenGrid {
		return s.table.View()
	}
	return s.list.View()
}
