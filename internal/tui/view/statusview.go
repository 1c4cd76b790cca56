// Package view renders a status overlay from a status and a theme.
package view

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/statusbox/internal/status"
	"github.com/javiermolinar/statusbox/internal/tui/indicator"
	"github.com/javiermolinar/statusbox/internal/tui/theme"
)

// StatusView is the overlay content: an indicator and a title above a content
// group holding the image, description and action.
//
// The content group hides when image, description and action are all hidden.
// The title does not take part in that test, so a title-only status still
// shows its title.
type StatusView struct {
	status  *status.Status
	theme   theme.Theme
	palette theme.Palette

	indicator   *indicator.Indicator
	title       Label
	description Label
	image       ImageSlot
	action      Button
	contentHide bool

	keys     KeyMap
	maxWidth int
}

type options struct {
	theme    *theme.Theme
	registry *theme.Registry
	keys     KeyMap
	maxWidth int
	ind      []indicator.Option
}

// Option configures a StatusView.
type Option func(*options)

// WithTheme styles the view with t instead of the registry default.
func WithTheme(t theme.Theme) Option {
	return func(o *options) {
		o.theme = &t
	}
}

// WithRegistry reads the initial theme from r.
func WithRegistry(r *theme.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithAnimation selects the indicator animation.
func WithAnimation(a indicator.Animation) Option {
	return func(o *options) {
		o.ind = append(o.ind, indicator.WithAnimation(a))
	}
}

// WithPeriod sets the indicator step period.
func WithPeriod(d time.Duration) Option {
	return func(o *options) {
		o.ind = append(o.ind, indicator.WithPeriod(d))
	}
}

// WithHidesWhenStopped controls whether a stopped indicator is drawn.
func WithHidesWhenStopped(hide bool) Option {
	return func(o *options) {
		o.ind = append(o.ind, indicator.WithHidesWhenStopped(hide))
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(o *options) {
		o.keys = k
	}
}

// WithMaxWidth limits the rendered width.
func WithMaxWidth(w int) Option {
	return func(o *options) {
		o.maxWidth = w
	}
}

// New builds a StatusView with nothing bound. The theme is read once, here.
func New(opts ...Option) *StatusView {
	o := options{keys: DefaultKeyMap()}
	for _, opt := range opts {
		opt(&o)
	}

	t := o.registry.Default()
	if o.theme != nil {
		t = o.theme.Clone()
	}

	v := &StatusView{
		indicator:   indicator.New(append([]indicator.Option{indicator.WithPalette(t.DotColors())}, o.ind...)...),
		title:       Label{Hidden: true},
		description: Label{Hidden: true, Wrap: true},
		image:       ImageSlot{Hidden: true},
		action:      Button{Hidden: true},
		contentHide: true,
		keys:        o.keys,
		maxWidth:    o.maxWidth,
	}
	v.SetTheme(t)
	return v
}

// UnmarshalJSON always panics: a StatusView can only be built with New.
func (v *StatusView) UnmarshalJSON([]byte) error {
	panic("view: decoding a StatusView is not supported, use New")
}

func (v *StatusView) mustInit() {
	if v == nil || v.indicator == nil {
		panic("view: StatusView used without New")
	}
}

// Status returns the last status set, which may be nil.
func (v *StatusView) Status() *status.Status {
	v.mustInit()
	return v.status
}

// SetStatus binds s to the sub-elements and returns the indicator's tick
// command when loading starts. A nil status is stored but leaves what is shown
// untouched.
func (v *StatusView) SetStatus(s *status.Status) tea.Cmd {
	v.mustInit()
	if s == nil {
		v.status = nil
		return nil
	}
	st := *s
	v.status = &st

	v.image.Image = st.Image
	v.title.Text = st.Title
	v.description.Text = st.Description
	v.action.Title = st.ActionTitle

	var cmd tea.Cmd
	if st.Loading {
		cmd = v.indicator.Start()
	} else {
		v.indicator.Stop()
	}

	v.image.Hidden = !st.HasImage()
	v.title.Hidden = !st.HasTitle()
	v.description.Hidden = !st.HasDescription()
	v.action.Hidden = !st.HasAction()

	v.contentHide = v.image.Hidden && v.description.Hidden && v.action.Hidden
	return cmd
}

// Theme returns the theme currently applied.
func (v *StatusView) Theme() theme.Theme {
	v.mustInit()
	return v.theme.Clone()
}

// SetTheme restyles the sub-elements. Content and visibility are unchanged.
func (v *StatusView) SetTheme(t theme.Theme) {
	v.mustInit()
	v.theme = t.Clone()
	v.palette = theme.NewPalette(v.theme)

	v.title.Style = v.palette.Title
	v.description.Style = v.palette.Description
	v.action.Style = v.palette.Action
	v.indicator.SetPalette(v.palette.Dots)
}

// SetTint recolours the title and description until the next SetTheme.
func (v *StatusView) SetTint(c lipgloss.TerminalColor) {
	v.mustInit()
	v.title.Style = v.title.Style.Foreground(c)
	v.description.Style = v.description.Style.Foreground(c)
}

// SetMaxSize implements surface.Sizer. Only the width is used; the surface
// clips the height.
func (v *StatusView) SetMaxSize(width, _ int) {
	v.mustInit()
	v.maxWidth = width
}

// Indicator exposes the loading indicator for direct start and stop.
func (v *StatusView) Indicator() *indicator.Indicator {
	v.mustInit()
	return v.indicator
}

// TitleLabel returns the title element.
func (v *StatusView) TitleLabel() Label {
	v.mustInit()
	return v.title
}

// DescriptionLabel returns the description element.
func (v *StatusView) DescriptionLabel() Label {
	v.mustInit()
	return v.description
}

// ImageSlot returns the image element.
func (v *StatusView) ImageSlot() ImageSlot {
	v.mustInit()
	return v.image
}

// ActionButton returns the action element.
func (v *StatusView) ActionButton() Button {
	v.mustInit()
	return v.action
}

// ContentHidden reports whether the image/description/action group is hidden.
func (v *StatusView) ContentHidden() bool {
	v.mustInit()
	return v.contentHide
}

// Press runs the bound action, if any.
func (v *StatusView) Press() {
	v.mustInit()
	if v.status != nil && v.status.Action != nil {
		v.status.Action()
	}
}

// Update routes indicator ticks and the press binding.
func (v *StatusView) Update(msg tea.Msg) tea.Cmd {
	v.mustInit()
	switch msg := msg.(type) {
	case indicator.TickMsg:
		return v.indicator.Update(msg)
	case tea.KeyMsg:
		if !v.action.Hidden && key.Matches(msg, v.keys.Press) {
			v.Press()
		}
	}
	return nil
}

// View renders the overlay content.
func (v *StatusView) View() string {
	v.mustInit()
	spacing := v.palette.Spacing

	content := ""
	if !v.contentHide {
		content = stack(spacing,
			v.image.render(v.maxWidth),
			v.description.render(v.maxWidth),
			v.action.render(v.maxWidth),
		)
	}
	return stack(spacing,
		v.indicator.View(),
		v.title.render(v.maxWidth),
		content,
	)
}
