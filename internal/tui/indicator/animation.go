package indicator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EmphasisScale is the scale an emphasised dot is drawn at.
const EmphasisScale = 1.5

// Dot is one sub-element of the indicator.
type Dot struct {
	Scale float64
	Color lipgloss.Color
}

// Emphasised reports whether the dot is drawn larger than rest size.
func (d Dot) Emphasised() bool {
	return d.Scale > 1
}

// Animation decides how dots change on each tick.
type Animation interface {
	// Reset returns dots to their resting appearance.
	Reset(dots []Dot, palette []lipgloss.Color)
	// Step applies tick to dots and returns the next tick counter.
	Step(dots []Dot, palette []lipgloss.Color, tick int) int
}

// ScaleEmphasis enlarges one dot per tick in order, then spends one tick with
// no dot emphasised before starting over.
type ScaleEmphasis struct {
	Scale float64 // Zero means EmphasisScale
}

// Reset implements Animation.
func (a ScaleEmphasis) Reset(dots []Dot, palette []lipgloss.Color) {
	restDots(dots, palette)
}

// Step implements Animation.
func (a ScaleEmphasis) Step(dots []Dot, _ []lipgloss.Color, tick int) int {
	scale := a.Scale
	if scale == 0 {
		scale = EmphasisScale
	}
	if prev := tick - 1; prev >= 0 && prev < len(dots) {
		dots[prev].Scale = 1
	}
	if tick >= 0 && tick < len(dots) {
		dots[tick].Scale = scale
	}
	if tick >= len(dots) {
		return 0
	}
	return tick + 1
}

// ColorRotation shifts the palette one dot further on every tick.
type ColorRotation struct{}

// Reset implements Animation.
func (ColorRotation) Reset(dots []Dot, palette []lipgloss.Color) {
	restDots(dots, palette)
}

// Step implements Animation.
func (ColorRotation) Step(dots []Dot, palette []lipgloss.Color, tick int) int {
	if n := len(palette); n > 0 {
		for i := range dots {
			dots[i].Color = palette[(i+tick)%n]
		}
	}
	return tick + 1
}

func restDots(dots []Dot, palette []lipgloss.Color) {
	for i := range dots {
		dots[i].Scale = 1
		if len(palette) > 0 {
			dots[i].Color = palette[i%len(palette)]
		}
	}
}

// Animation names accepted by ParseAnimation.
const (
	AnimationScale  = "scale"
	AnimationRotate = "rotate"
)

// Animations returns the accepted animation names.
func Animations() []string {
	return []string{AnimationScale, AnimationRotate}
}

// ParseAnimation maps a configured name to its Animation.
func ParseAnimation(name string) (Animation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AnimationScale:
		return ScaleEmphasis{}, nil
	case AnimationRotate:
		return ColorRotation{}, nil
	default:
		return nil, fmt.Errorf("unknown indicator animation %q (want %s)", name, strings.Join(Animations(), " or "))
	}
}
