package controller

import "github.com/javiermolinar/statusbox/internal/tui/surface"

// Host is the screen a Controller puts its overlay on. The set of hosts is
// closed: Plain, Screen, ListScreen and GridScreen.
type Host interface {
	host()
}

// Plain is a bare surface that hosts the overlay itself.
type Plain struct {
	Surface *surface.Surface
}

// Screen is a full screen; the overlay goes on its root.
type Screen struct {
	Root *surface.Surface
}

// ListScreen is a screen built around a list. The overlay goes on the list's
// background when one is set, else on the root.
type ListScreen struct {
	Root       *surface.Surface
	Background *surface.Surface
}

// GridScreen is a screen built around a grid. It resolves like ListScreen.
type GridScreen struct {
	Root       *surface.Surface
	Background *surface.Surface
}

func (Plain) host()      {}
func (Screen) host()     {}
func (ListScreen) host() {}
func (GridScreen) host() {}

// Resolve returns the surface the overlay belongs on. A host without a root
// surface is a programming error and panics.
func Resolve(h Host) *surface.Surface {
	switch h := h.(type) {
	case Plain:
		return mustRoot(h.Surface, "plain")
	case Screen:
		return mustRoot(h.Root, "screen")
	case ListScreen:
		if h.Background != nil {
			return h.Background
		}
		return mustRoot(h.Root, "list screen")
	case GridScreen:
		if h.Background != nil {
			return h.Background
		}
		return mustRoot(h.Root, "grid screen")
	default:
		panic("controller: unknown host")
	}
}

// kind names a host in logs.
func kind(h Host) string {
	switch h.(type) {
	case Plain:
		return "plain"
	case Screen:
		return "screen"
	case ListScreen:
		return "list"
	case GridScreen:
		return "grid"
	default:
		return "unknown"
	}
}

func mustRoot(s *surface.Surface, name string) *surface.Surface {
	if s == nil {
		panic("controller: " + name + " has no root surface")
	}
	return s
}
