package theme

// Registry holds the default theme handed to newly built overlays.
//
// Views copy the default once, when they are constructed. Changing the
// default afterwards does not restyle views that already exist.
type Registry struct {
	current Theme
}

// NewRegistry returns a registry whose default is t.
func NewRegistry(t Theme) *Registry {
	return &Registry{current: t.Clone()}
}

// Default returns a copy of the current default theme.
// A nil registry yields the built-in theme.
func (r *Registry) Default() Theme {
	if r == nil {
		return Default()
	}
	return r.current.Clone()
}

// SetDefault replaces the default theme for future overlays.
func (r *Registry) SetDefault(t Theme) {
	r.current = t.Clone()
}
