// Package indicator implements the three-dot loading indicator.
//
// The indicator is driven by bubbletea tick messages. Each Start issues a new
// timer handle; ticks carrying an older handle are dropped, so stopping before
// a tick is delivered means that tick never runs.
package indicator

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// DotCount is the number of dots an indicator draws.
	DotCount = 3
	// DefaultPeriod is the delay between animation steps.
	DefaultPeriod = 300 * time.Millisecond
)

var defaultPalette = []lipgloss.Color{"#b1b149", "#e3a60c", "#ea605e"}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances an indicator by one step.
type TickMsg struct {
	Time time.Time
	ID   int
	gen  int
}

// timer is the live handle of a running indicator.
type timer struct {
	gen int
}

// Indicator is a timer-driven dot animation.
type Indicator struct {
	id        int
	gen       int
	timer     *timer // non-nil iff animating
	animating bool
	ticks     int

	hidesWhenStopped bool
	period           time.Duration
	animation        Animation
	palette          []lipgloss.Color
	dots             []Dot
}

// Option configures an Indicator.
type Option func(*Indicator)

// WithAnimation selects the animation strategy.
func WithAnimation(a Animation) Option {
	return func(ind *Indicator) {
		if a != nil {
			ind.animation = a
		}
	}
}

// WithPeriod sets the delay between steps.
func WithPeriod(d time.Duration) Option {
	return func(ind *Indicator) {
		if d > 0 {
			ind.period = d
		}
	}
}

// WithPalette sets the dot colours.
func WithPalette(colors []lipgloss.Color) Option {
	return func(ind *Indicator) {
		if len(colors) > 0 {
			ind.palette = append([]lipgloss.Color(nil), colors...)
		}
	}
}

// WithHidesWhenStopped controls whether a stopped indicator renders.
func WithHidesWhenStopped(hide bool) Option {
	return func(ind *Indicator) {
		ind.hidesWhenStopped = hide
	}
}

// New returns a stopped indicator.
func New(opts ...Option) *Indicator {
	ind := &Indicator{
		id:               nextID(),
		hidesWhenStopped: true,
		period:           DefaultPeriod,
		animation:        ScaleEmphasis{},
		palette:          defaultPalette,
		dots:             make([]Dot, DotCount),
	}
	for _, opt := range opts {
		opt(ind)
	}
	ind.animation.Reset(ind.dots, ind.palette)
	return ind
}

// ID identifies the indicator's tick messages.
func (ind *Indicator) ID() int {
	return ind.id
}

// Start begins animating. Calling Start while animating restarts the period.
func (ind *Indicator) Start() tea.Cmd {
	ind.animating = true
	ind.gen++
	ind.timer = &timer{gen: ind.gen}
	return ind.tick(ind.gen)
}

// Stop halts the animation, drops any pending tick and rewinds to rest.
func (ind *Indicator) Stop() {
	ind.animating = false
	ind.gen++
	ind.timer = nil
	ind.ticks = 0
	ind.animation.Reset(ind.dots, ind.palette)
}

// Animating reports whether the timer is running.
func (ind *Indicator) Animating() bool {
	return ind.animating
}

// Hidden reports whether the indicator renders nothing.
func (ind *Indicator) Hidden() bool {
	return ind.hidesWhenStopped && !ind.animating
}

// HidesWhenStopped reports whether a stopped indicator is hidden.
func (ind *Indicator) HidesWhenStopped() bool {
	return ind.hidesWhenStopped
}

// SetHidesWhenStopped controls whether a stopped indicator is hidden.
func (ind *Indicator) SetHidesWhenStopped(hide bool) {
	ind.hidesWhenStopped = hide
}

// Ticks returns the animation counter.
func (ind *Indicator) Ticks() int {
	return ind.ticks
}

// Dots returns a copy of the current dot state.
func (ind *Indicator) Dots() []Dot {
	return append([]Dot(nil), ind.dots...)
}

// SetPalette recolours the dots. A running rotation picks the new colours up
// on its next step.
func (ind *Indicator) SetPalette(colors []lipgloss.Color) {
	if len(colors) == 0 {
		return
	}
	ind.palette = append([]lipgloss.Color(nil), colors...)
	for i := range ind.dots {
		ind.dots[i].Color = ind.palette[i%len(ind.palette)]
	}
}

// SetAnimation swaps the strategy and rewinds the dots. A running timer keeps
// running.
func (ind *Indicator) SetAnimation(a Animation) {
	if a == nil {
		return
	}
	ind.animation = a
	ind.ticks = 0
	ind.animation.Reset(ind.dots, ind.palette)
}

// Update advances the animation on this indicator's live tick.
func (ind *Indicator) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != ind.id {
		return nil
	}
	if ind.timer == nil || tick.gen != ind.timer.gen {
		return nil
	}
	ind.ticks = ind.animation.Step(ind.dots, ind.palette, ind.ticks)
	return ind.tick(ind.timer.gen)
}

func (ind *Indicator) tick(gen int) tea.Cmd {
	id := ind.id
	return tea.Tick(ind.period, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id, gen: gen}
	})
}

// View draws the dots as a small triangle: two on top, one centred below.
func (ind *Indicator) View() string {
	if ind.Hidden() {
		return ""
	}
	glyphs := make([]string, len(ind.dots))
	for i, d := range ind.dots {
		glyph := "•"
		if d.Emphasised() {
			glyph = "●"
		}
		glyphs[i] = lipgloss.NewStyle().Foreground(d.Color).Render(glyph)
	}

	var b strings.Builder
	b.WriteString(glyphs[0] + " " + glyphs[1])
	if len(glyphs) > 2 {
		b.WriteString("\n " + glyphs[2] + " ")
	}
	return b.String()
}
