// Package surface hosts at most one overlay on top of a screen region.
package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// DefaultReadableWidth caps the width an overlay may use.
	DefaultReadableWidth = 72
	// DefaultMargin is the horizontal inset of the readable area.
	DefaultMargin = 2
)

// Element is anything that can be drawn as an overlay.
type Element interface {
	View() string
}

// Sizer is implemented by elements that lay out to the space they get.
type Sizer interface {
	SetMaxSize(width, height int)
}

// Rect is a cell rectangle inside a surface.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Surface is a screen region that can carry one overlay.
type Surface struct {
	name          string
	width         int
	height        int
	readableWidth int
	margin        int
	bgColor       lipgloss.Color
	overlay       Element
}

// Option configures a Surface.
type Option func(*Surface)

// WithName labels the surface in logs.
func WithName(name string) Option {
	return func(s *Surface) {
		s.name = name
	}
}

// WithReadableWidth caps the overlay width. Zero or less removes the cap.
func WithReadableWidth(w int) Option {
	return func(s *Surface) {
		s.readableWidth = w
	}
}

// WithMargin sets the horizontal inset of the readable area.
func WithMargin(m int) Option {
	return func(s *Surface) {
		if m >= 0 {
			s.margin = m
		}
	}
}

// WithBackground paints the overlay frame with a background colour.
func WithBackground(c lipgloss.Color) Option {
	return func(s *Surface) {
		s.bgColor = c
	}
}

// New returns an empty surface of zero size.
func New(opts ...Option) *Surface {
	s := &Surface{
		readableWidth: DefaultReadableWidth,
		margin:        DefaultMargin,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the surface label.
func (s *Surface) Name() string {
	return s.name
}

// SetSize updates the surface dimensions.
func (s *Surface) SetSize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.resizeOverlay()
}

// Size returns the surface dimensions.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// SetBackground updates the overlay background colour.
func (s *Surface) SetBackground(c lipgloss.Color) {
	s.bgColor = c
}

// Overlay returns the attached overlay, or nil.
func (s *Surface) Overlay() Element {
	return s.overlay
}

// HasOverlay reports whether an overlay is attached.
func (s *Surface) HasOverlay() bool {
	return s.overlay != nil
}

// Attach replaces the current overlay with e. A nil e only removes it.
func (s *Surface) Attach(e Element) {
	s.overlay = nil
	if e == nil {
		return
	}
	s.overlay = e
	s.resizeOverlay()
}

// Detach removes the current overlay.
func (s *Surface) Detach() {
	s.Attach(nil)
}

func (s *Surface) resizeOverlay() {
	if sz, ok := s.overlay.(Sizer); ok {
		r := s.ReadableBounds()
		sz.SetMaxSize(r.Width, r.Height)
	}
}

// ReadableBounds is the area an overlay must stay within: inset by the margin
// and capped at the readable width, horizontally centred, full height.
func (s *Surface) ReadableBounds() Rect {
	if s.width <= 0 || s.height <= 0 {
		return Rect{}
	}
	w := s.width - 2*s.margin
	if w <= 0 {
		w = s.width
	}
	if s.readableWidth > 0 && w > s.readableWidth {
		w = s.readableWidth
	}
	return Rect{X: (s.width - w) / 2, Y: 0, Width: w, Height: s.height}
}

// Frame returns where the current overlay lands: its content size clamped to
// the readable bounds, centred in the surface. It may be smaller than the
// bounds but never larger.
func (s *Surface) Frame() Rect {
	if s.overlay == nil {
		return Rect{}
	}
	return s.frameFor(contentLines(s.overlay.View()))
}

func (s *Surface) frameFor(lines []string) Rect {
	bounds := s.ReadableBounds()
	if bounds.Empty() {
		return Rect{}
	}
	w, h := contentSize(lines)
	w = min(w, bounds.Width)
	h = min(h, bounds.Height)
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{
		X:      (s.width - w) / 2,
		Y:      (s.height - h) / 2,
		Width:  w,
		Height: h,
	}
}

// Render draws the overlay on top of base content.
func (s *Surface) Render(base string) string {
	if s.overlay == nil || s.width <= 0 || s.height <= 0 {
		return base
	}

	content := contentLines(s.overlay.View())
	frame := s.frameFor(content)
	if frame.Empty() {
		return base
	}

	baseLines := normalizeBase(base, s.width, s.height)
	overlayLines := s.overlayLines(content, frame.Width, frame.Height)

	lines := make([]string, 0, s.height)
	for row := 0; row < s.height; row++ {
		if row < frame.Y || row >= frame.Y+frame.Height {
			lines = append(lines, baseLines[row])
			continue
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, frame.X)
		rightSlice := ansi.Cut(baseLine, frame.X+frame.Width, s.width)
		lines = append(lines, leftSlice+overlayLines[row-frame.Y]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

func (s *Surface) overlayLines(content []string, width, height int) []string {
	bgSeq := ""
	resetSeq := ""
	if s.bgColor != "" {
		bgSeq = ansi.Style{}.BackgroundColor(ansi.HexColor(string(s.bgColor))).String()
		resetSeq = ansi.ResetStyle
	}

	lines := make([]string, height)
	for i := range lines {
		line := ""
		if i < len(content) {
			line = content[i]
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			line = ansi.Cut(line, 0, width)
			lineWidth = width
		}
		if lineWidth < width {
			line += strings.Repeat(" ", width-lineWidth)
		}
		if bgSeq != "" {
			line = bgSeq + applyBackgroundResets(line, bgSeq) + resetSeq
		}
		lines[i] = line
	}
	return lines
}

func contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func contentSize(lines []string) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

// applyBackgroundResets re-opens the background after every reset inside
// line so styled content does not punch holes in the frame.
func applyBackgroundResets(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

func normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
