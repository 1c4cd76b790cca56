package surface

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type textElement string

func (t textElement) View() string { return string(t) }

type sizedElement struct {
	text          string
	width, height int
}

func (s *sizedElement) View() string { return s.text }

func (s *sizedElement) SetMaxSize(width, height int) {
	s.width, s.height = width, height
}

func filledBase(width, height int) string {
	row := strings.Repeat(".", width)
	return strings.Repeat(row+"\n", height-1) + row
}

func TestAttachDetach(t *testing.T) {
	s := New()
	if s.HasOverlay() {
		t.Fatalf("expected new surface to have no overlay")
	}

	e := textElement("hello")
	s.Attach(e)
	if s.Overlay() != e {
		t.Fatalf("Overlay() = %v, want attached element", s.Overlay())
	}

	s.Detach()
	if s.Overlay() != nil {
		t.Fatalf("expected overlay to be removed after Detach")
	}

	s.Detach()
	if s.HasOverlay() {
		t.Fatalf("expected repeated Detach to be a no-op")
	}
}

func TestAttachTwiceKeepsOne(t *testing.T) {
	s := New()
	e := &sizedElement{text: "x"}

	s.Attach(e)
	s.Attach(e)

	if s.Overlay() != e {
		t.Fatalf("expected the same element to stay attached")
	}
}

func TestAttachReplaces(t *testing.T) {
	s := New()
	first := textElement("first")
	second := textElement("second")

	sequence := []Element{first, nil, second, first, nil, nil, second}
	for i, e := range sequence {
		s.Attach(e)
		if s.Overlay() != e {
			t.Fatalf("step %d: Overlay() = %v, want %v", i, s.Overlay(), e)
		}
	}
}

func TestAttachSizesElement(t *testing.T) {
	s := New(WithMargin(2), WithReadableWidth(20))
	s.SetSize(100, 30)

	e := &sizedElement{text: "x"}
	s.Attach(e)
	if e.width != 20 || e.height != 30 {
		t.Fatalf("SetMaxSize(%d, %d), want (20, 30)", e.width, e.height)
	}

	s.SetSize(16, 5)
	if e.width != 12 || e.height != 5 {
		t.Fatalf("after resize SetMaxSize(%d, %d), want (12, 5)", e.width, e.height)
	}
}

func TestReadableBounds(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		margin        int
		readable      int
		want          Rect
	}{
		{name: "capped", width: 100, height: 10, margin: 2, readable: 72, want: Rect{X: 14, Width: 72, Height: 10}},
		{name: "margin", width: 40, height: 10, margin: 2, readable: 72, want: Rect{X: 2, Width: 36, Height: 10}},
		{name: "no cap", width: 40, height: 10, margin: 0, readable: 0, want: Rect{X: 0, Width: 40, Height: 10}},
		{name: "margin too wide", width: 3, height: 2, margin: 2, readable: 72, want: Rect{X: 0, Width: 3, Height: 2}},
		{name: "zero size", width: 0, height: 0, margin: 2, readable: 72, want: Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(WithMargin(tt.margin), WithReadableWidth(tt.readable))
			s.SetSize(tt.width, tt.height)
			if got := s.ReadableBounds(); got != tt.want {
				t.Fatalf("ReadableBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFrameStaysWithinBounds(t *testing.T) {
	s := New(WithMargin(2), WithReadableWidth(20))
	s.SetSize(40, 8)

	tests := []struct {
		name    string
		content string
		want    Rect
	}{
		{name: "small is centred", content: "abcd\nef", want: Rect{X: 18, Y: 3, Width: 4, Height: 2}},
		{name: "wide is clamped", content: strings.Repeat("w", 50), want: Rect{X: 10, Y: 3, Width: 20, Height: 1}},
		{name: "tall is clamped", content: strings.Repeat("t\n", 20) + "t", want: Rect{X: 19, Y: 0, Width: 1, Height: 8}},
		{name: "empty has no frame", content: "", want: Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Attach(textElement(tt.content))
			got := s.Frame()
			if got != tt.want {
				t.Fatalf("Frame() = %+v, want %+v", got, tt.want)
			}
			bounds := s.ReadableBounds()
			if !got.Empty() && (got.X < bounds.X || got.X+got.Width > bounds.X+bounds.Width) {
				t.Fatalf("frame %+v escapes readable bounds %+v", got, bounds)
			}
		})
	}
}

func TestRenderWithoutOverlayReturnsBase(t *testing.T) {
	s := New()
	s.SetSize(10, 2)
	base := "alpha\nbeta"
	if got := s.Render(base); got != base {
		t.Fatalf("expected base content unchanged without overlay")
	}
}

func TestRenderZeroSizeReturnsBase(t *testing.T) {
	s := New()
	s.Attach(textElement("content"))
	base := "alpha"
	if got := s.Render(base); got != base {
		t.Fatalf("expected base content unchanged at zero size")
	}
}

func TestRenderCompositesOverlay(t *testing.T) {
	s := New(WithBackground(lipgloss.Color("#0c0c0c")))
	width, height := 30, 12
	s.SetSize(width, height)
	content := "LOADING"
	s.Attach(textElement(content))

	got := s.Render(filledBase(width, height))
	lines := strings.Split(got, "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}

	frame := s.Frame()
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor("#0c0c0c")).String()
	if !strings.Contains(ansi.Strip(got), content) {
		t.Fatalf("expected rendered output to include overlay content")
	}

	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line %d width = %d, want %d", i, w, width)
		}
		hasBg := strings.Contains(line, bgSeq)
		inFrame := i >= frame.Y && i < frame.Y+frame.Height
		if inFrame != hasBg {
			t.Fatalf("line %d: background present = %t, want %t", i, hasBg, inFrame)
		}
	}
}

func TestRenderKeepsBaseAroundFrame(t *testing.T) {
	s := New()
	s.SetSize(11, 3)
	s.Attach(textElement("abc"))

	got := strings.Split(s.Render(filledBase(11, 3)), "\n")
	want := []string{"...........", "....abc....", "..........."}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderPadsShortBase(t *testing.T) {
	s := New(WithMargin(0))
	s.SetSize(5, 3)
	s.Attach(textElement("x"))

	got := strings.Split(s.Render("ab"), "\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	if got[1] != "  x  " {
		t.Fatalf("middle line = %q, want %q", got[1], "  x  ")
	}
}
