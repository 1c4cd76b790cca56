package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_Spacing(t *testing.T) {
	base := Default()
	base.ItemsVerticalSpacing = -3

	palette := NewPalette(base)
	if palette.Spacing != 0 {
		t.Fatalf("Spacing = %d, want 0", palette.Spacing)
	}
}

func TestNewPalette_TitleStyle(t *testing.T) {
	palette := NewPalette(Default())

	if got := palette.Title.GetForeground(); got != lipgloss.Color("#202020") {
		t.Fatalf("Title foreground = %v, want #202020", got)
	}
	if !palette.Title.GetBold() {
		t.Fatalf("expected bold title")
	}
	if !palette.Description.GetFaint() {
		t.Fatalf("expected faint description")
	}
}

func TestActionColor_ExplicitWins(t *testing.T) {
	base := Default()
	base.ActionTitleColor = "#123456"

	if got := base.ActionColor(); got != "#123456" {
		t.Fatalf("ActionColor() = %q, want #123456", got)
	}
}

func TestActionColor_PrefersContrast(t *testing.T) {
	base := Theme{
		Bg:              "#ffffff",
		TitleColor:      "#eeeeee",
		IndicatorColors: []string{"#fafafa", "#111111", "#dddddd"},
	}

	if got := base.ActionColor(); got != "#111111" {
		t.Fatalf("ActionColor() = %q, want #111111", got)
	}
}

func TestActionFont_Fallback(t *testing.T) {
	base := Default()
	if got := base.ActionFont(); got != (Font{Bold: true}) {
		t.Fatalf("ActionFont() = %+v, want bold", got)
	}

	base.ActionTitleFont = &Font{Italic: true}
	if got := base.ActionFont(); got != (Font{Italic: true}) {
		t.Fatalf("ActionFont() = %+v, want italic", got)
	}
}

func TestDotColors_AlwaysThree(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
	}{
		{name: "empty uses default", colors: nil},
		{name: "single colour is extended", colors: []string{"#ff0000"}},
		{name: "extra colours are dropped", colors: []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Theme{Bg: "#000000", IndicatorColors: tt.colors}
			got := base.DotColors()
			if len(got) != DotCount {
				t.Fatalf("len(DotColors()) = %d, want %d", len(got), DotCount)
			}
		})
	}
}

func TestDotColors_ExtendsTowardsBackground(t *testing.T) {
	base := Theme{Bg: "#000000", IndicatorColors: []string{"#ffffff"}}
	got := base.DotColors()

	if got[0] != lipgloss.Color("#ffffff") {
		t.Fatalf("DotColors()[0] = %q, want #ffffff", got[0])
	}
	if relativeLuminance(string(got[1])) >= relativeLuminance(string(got[0])) {
		t.Fatalf("expected second dot darker than first")
	}
	if relativeLuminance(string(got[2])) >= relativeLuminance(string(got[1])) {
		t.Fatalf("expected third dot darker than second")
	}
}

func TestIsLight(t *testing.T) {
	if !Default().IsLight() {
		t.Fatalf("expected default theme to be light")
	}
	if MustLoad("mocha").IsLight() {
		t.Fatalf("expected mocha to be dark")
	}
}

func TestBlendColorsClamps(t *testing.T) {
	if got := blendColors("#000000", "#ffffff", 2); got != "#ffffff" {
		t.Fatalf("blendColors ratio 2 = %q, want #ffffff", got)
	}
	if got := blendColors("#000000", "#ffffff", -1); got != "#000000" {
		t.Fatalf("blendColors ratio -1 = %q, want #000000", got)
	}
	if got := blendColors("bad", "#ffffff", 0.5); got != "bad" {
		t.Fatalf("blendColors invalid = %q, want passthrough", got)
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
		ok      bool
	}{
		{in: "#ffffff", r: 255, g: 255, b: 255, ok: true},
		{in: "#1E1e2E", r: 30, g: 30, b: 46, ok: true},
		{in: "ffffff"},
		{in: "#fff"},
		{in: "#gggggg"},
	}
	for _, tt := range tests {
		r, g, b, ok := RGB(tt.in)
		if ok != tt.ok || r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("RGB(%q) = %d,%d,%d,%v want %d,%d,%d,%v", tt.in, r, g, b, ok, tt.r, tt.g, tt.b, tt.ok)
		}
	}
}
