// Package status describes what a status overlay shows.
package status

import "strings"

// Image is an opaque picture handle rendered verbatim, typically glyph art.
// The empty Image means no image.
type Image string

// Status is a sparse, immutable description of an overlay's content.
// Every field is optional; the zero value shows nothing and does not load.
type Status struct {
	Loading     bool
	Title       string
	Description string
	ActionTitle string
	Image       Image
	Action      func()
}

// SimpleLoading returns a status that only runs the loading indicator.
func SimpleLoading() Status {
	return Status{Loading: true}
}

// HasTitle reports whether the title should be shown.
func (s Status) HasTitle() bool {
	return s.Title != ""
}

// HasDescription reports whether the description should be shown.
func (s Status) HasDescription() bool {
	return s.Description != ""
}

// HasImage reports whether an image is set.
func (s Status) HasImage() bool {
	return s.Image != ""
}

// HasAction reports whether an action callback is bound.
func (s Status) HasAction() bool {
	return s.Action != nil
}

// Text joins the title and description, skipping empty parts.
func (s Status) Text() string {
	parts := make([]string, 0, 2)
	if s.HasTitle() {
		parts = append(parts, s.Title)
	}
	if s.HasDescription() {
		parts = append(parts, s.Description)
	}
	return strings.Join(parts, "\n")
}
