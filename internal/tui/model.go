// Package tui provides the demo terminal user interface for statusbox.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/statusbox/internal/config"
	"github.com/javiermolinar/statusbox/internal/debuglog"
	"github.com/javiermolinar/statusbox/internal/tui/controller"
	"github.com/javiermolinar/statusbox/internal/tui/surface"
	"github.com/javiermolinar/statusbox/internal/tui/theme"
	"github.com/javiermolinar/statusbox/internal/tui/view"
)

const (
	headerHeight = 1
	footerHeight = 1

	defaultRetryDelay = 2 * time.Second
)

// retryDoneMsg ends a retry started from an overlay action.
type retryDoneMsg struct {
	screen screenKind
}

// Model is the demo TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	themes *theme.Registry
	log    *debuglog.Logger

	styles Styles
	keys   KeyMap

	// Screens
	items   []scenario
	screens []*screen
	active  int

	// Commands queued by overlay actions while a key is handled
	pending []tea.Cmd

	copyText   func(string) error
	retryDelay time.Duration

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg string
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the debug logger.
func WithLogger(l *debuglog.Logger) ModelOption {
	return func(m *Model) {
		m.log = l
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) ModelOption {
	return func(m *Model) {
		m.copyText = fn
	}
}

// WithRetryDelay sets how long the retry action stays loading.
func WithRetryDelay(d time.Duration) ModelOption {
	return func(m *Model) {
		m.retryDelay = d
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) (*Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	t, err := cfg.Theme()
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	period, err := cfg.IndicatorPeriod()
	if err != nil {
		return nil, fmt.Errorf("indicator: %w", err)
	}

	m := &Model{
		config:     cfg,
		themes:     theme.NewRegistry(t),
		log:        debuglog.Disabled(),
		styles:     NewStyles(t),
		keys:       DefaultKeyMap(),
		items:      scenarios(),
		copyText:   clipboard.WriteAll,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(m)
	}

	viewOpts := []view.Option{
		view.WithAnimation(cfg.Animation()),
		view.WithPeriod(period),
		view.WithHidesWhenStopped(cfg.Indicator.HidesWhenStopped),
		view.WithKeyMap(view.KeyMap{Press: m.keys.Press}),
	}
	surfaceOpts := []surface.Option{
		surface.WithReadableWidth(cfg.Layout.ReadableWidth),
		surface.WithMargin(cfg.Layout.Margin),
		surface.WithBackground(theme.Color(t.Bg)),
	}

	for _, kind := range []screenKind{screenList, screenGrid} {
		s := newScreen(kind, m.items, surfaceOpts)
		s.ctrl = controller.New(s.host(),
			controller.WithRegistry(m.themes),
			controller.WithViewOptions(viewOpts...),
			controller.WithLogger(m.log),
			controller.WithAfterAttach(func() { s.focused = true }),
		)
		m.screens = append(m.screens, s)
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) screen() *screen {
	return m.screens[m.active]
}

func (m *Model) screenOf(kind screenKind) *screen {
	for _, s := range m.screens {
		if s.kind == kind {
			return s
		}
	}
	return m.screen()
}

// Run starts the TUI application.
func Run(cfg *config.Config, debug bool) error {
	log, err := debuglog.Open(debug, debuglog.DefaultPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Close() }()

	m, err := New(cfg, WithLogger(log))
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
