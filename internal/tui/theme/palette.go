package theme

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// DotCount is the number of colours an indicator palette carries.
const DotCount = 3

// Palette holds precomputed styles derived from a Theme.
type Palette struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Action      lipgloss.Style
	Dots        []lipgloss.Color
	Spacing     int
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t Theme) Palette {
	return Palette{
		Title:       t.TitleFont.Apply(lipgloss.NewStyle().Foreground(lipgloss.Color(t.TitleColor))),
		Description: t.DescriptionFont.Apply(lipgloss.NewStyle().Foreground(lipgloss.Color(t.DescriptionColor))),
		Action:      t.ActionFont().Apply(lipgloss.NewStyle().Foreground(lipgloss.Color(t.ActionColor()))),
		Dots:        t.DotColors(),
		Spacing:     max(t.ItemsVerticalSpacing, 0),
	}
}

// ActionFont returns the action font, falling back to bold.
func (t Theme) ActionFont() Font {
	if t.ActionTitleFont != nil {
		return *t.ActionTitleFont
	}
	return Font{Bold: true}
}

// ActionColor returns the action colour. When the theme leaves it unset, the
// indicator colour with the best contrast against the background is used.
func (t Theme) ActionColor() string {
	if t.ActionTitleColor != "" {
		return t.ActionTitleColor
	}
	best := t.TitleColor
	bestRatio := contrastRatio(t.Bg, best)
	for _, c := range t.IndicatorColors {
		if r := contrastRatio(t.Bg, c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}

// DotColors returns exactly DotCount colours. Short palettes are extended by
// shading the last colour towards the background.
func (t Theme) DotColors() []lipgloss.Color {
	src := t.IndicatorColors
	if len(src) == 0 {
		src = Default().IndicatorColors
	}
	out := make([]lipgloss.Color, DotCount)
	for i := range out {
		if i < len(src) {
			out[i] = lipgloss.Color(src[i])
			continue
		}
		last := src[len(src)-1]
		out[i] = lipgloss.Color(blendColors(last, t.Bg, 0.25*float64(i-len(src)+1)))
	}
	return out
}

// IsLight reports whether the theme background is light.
func (t Theme) IsLight() bool {
	return isLightTheme(t.Bg)
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// RGB splits a #rrggbb colour into its channels.
func RGB(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v>>16&0xff), int(v>>8&0xff), int(v&0xff), true
}

func hexColor(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// contrastRatio is the WCAG contrast between two colours, from 1 to 21.
func contrastRatio(a, b string) float64 {
	hi, lo := relativeLuminance(a), relativeLuminance(b)
	if hi < lo {
		hi, lo = lo, hi
	}
	return (hi + 0.05) / (lo + 0.05)
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := RGB(hex)
	if !ok {
		return 0
	}
	return 0.2126*linearChannel(r) + 0.7152*linearChannel(g) + 0.0722*linearChannel(b)
}

func linearChannel(c int) float64 {
	v := float64(c) / 255
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// blendColors mixes a towards b by ratio, clamped to [0, 1]. Invalid input
// returns a unchanged.
func blendColors(a, b string, ratio float64) string {
	ar, ag, ab, okA := RGB(a)
	br, bg, bb, okB := RGB(b)
	if !okA || !okB {
		return a
	}
	ratio = min(max(ratio, 0), 1)
	mix := func(x, y int) int {
		return int(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return hexColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
