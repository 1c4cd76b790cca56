// Package controller shows and hides status overlays on a host screen.
package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/statusbox/internal/debuglog"
	"github.com/javiermolinar/statusbox/internal/status"
	"github.com/javiermolinar/statusbox/internal/tui/surface"
	"github.com/javiermolinar/statusbox/internal/tui/theme"
	"github.com/javiermolinar/statusbox/internal/tui/view"
)

// StatusView is an overlay that can display a status.
type StatusView interface {
	SetStatus(*status.Status) tea.Cmd
	View() string
}

// Factory returns the overlay for the next Show. Returning nil skips the show.
type Factory func() StatusView

// Controller puts status overlays on its host.
type Controller struct {
	host        Host
	themes      *theme.Registry
	viewOpts    []view.Option
	factory     Factory
	afterAttach func()
	log         *debuglog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithFactory supplies overlays, for example to reuse one view.
func WithFactory(f Factory) Option {
	return func(c *Controller) {
		c.factory = f
	}
}

// WithRegistry sets the theme registry the default factory reads.
func WithRegistry(r *theme.Registry) Option {
	return func(c *Controller) {
		c.themes = r
	}
}

// WithViewOptions passes options to views built by the default factory.
func WithViewOptions(opts ...view.Option) Option {
	return func(c *Controller) {
		c.viewOpts = append(c.viewOpts, opts...)
	}
}

// WithAfterAttach runs fn after every Show, once the overlay is attached.
func WithAfterAttach(fn func()) Option {
	return func(c *Controller) {
		c.afterAttach = fn
	}
}

// WithLogger logs shows and hides.
func WithLogger(l *debuglog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// New returns a controller for h.
func New(h Host, opts ...Option) *Controller {
	c := &Controller{host: h}
	for _, opt := range opts {
		opt(c)
	}
	if c.factory == nil {
		c.factory = c.newView
	}
	return c
}

func (c *Controller) newView() StatusView {
	opts := append([]view.Option{view.WithRegistry(c.themes)}, c.viewOpts...)
	return view.New(opts...)
}

// Host returns the controller's host.
func (c *Controller) Host() Host {
	return c.host
}

// SetHost switches the host. An overlay on the old host stays there.
func (c *Controller) SetHost(h Host) {
	c.host = h
}

// Target returns the surface the overlay is put on.
func (c *Controller) Target() *surface.Surface {
	return Resolve(c.host)
}

// Show binds st to a fresh overlay and attaches it, replacing any overlay
// already there. The returned command drives the loading indicator.
func (c *Controller) Show(st status.Status) tea.Cmd {
	target := c.Target()
	sv := c.factory()
	if sv == nil {
		return nil
	}

	cmd := sv.SetStatus(&st)
	target.Attach(sv)

	c.log.Log(debuglog.EventStatusShow, map[string]any{
		"host":        kind(c.host),
		"surface":     target.Name(),
		"loading":     st.Loading,
		"title":       st.Title,
		"description": st.Description,
		"has_action":  st.HasAction(),
	})

	if c.afterAttach != nil {
		c.afterAttach()
	}
	return cmd
}

// Hide removes the overlay from the target surface.
func (c *Controller) Hide() {
	target := c.Target()
	target.Detach()

	c.log.Log(debuglog.EventStatusHide, map[string]any{
		"host":    kind(c.host),
		"surface": target.Name(),
	})
}

// Current returns the overlay on the target surface, or nil.
func (c *Controller) Current() surface.Element {
	return c.Target().Overlay()
}

// CurrentView returns the current overlay when it is a standard StatusView.
func (c *Controller) CurrentView() (*view.StatusView, bool) {
	sv, ok := c.Current().(*view.StatusView)
	return sv, ok
}

// Update forwards msg to the current overlay when it handles messages.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	u, ok := c.Current().(interface{ Update(tea.Msg) tea.Cmd })
	if !ok {
		return nil
	}
	return u.Update(msg)
}
