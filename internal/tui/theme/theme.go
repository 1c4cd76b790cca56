// Package theme provides the styling model for status overlays.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when no name is configured.
const DefaultName = "default"

// Font is the terminal rendition of a typeface: a set of text attributes.
type Font struct {
	Bold      bool `toml:"bold"`
	Italic    bool `toml:"italic"`
	Underline bool `toml:"underline"`
	Faint     bool `toml:"faint"`
}

// Apply sets the font attributes on a style.
func (f Font) Apply(s lipgloss.Style) lipgloss.Style {
	return s.Bold(f.Bold).Italic(f.Italic).Underline(f.Underline).Faint(f.Faint)
}

// Theme describes how a status overlay is styled.
type Theme struct {
	Name             string `toml:"name"`
	Bg               string `toml:"bg"` // Background the overlay sits on, used for contrast
	TitleColor       string `toml:"title_color"`
	TitleFont        Font   `toml:"title_font"`
	DescriptionColor string `toml:"description_color"`
	DescriptionFont  Font   `toml:"description_font"`

	// Optional; empty or nil derives a value from the rest of the theme.
	ActionTitleColor string `toml:"action_title_color,omitempty"`
	ActionTitleFont  *Font  `toml:"action_title_font,omitempty"`

	ItemsVerticalSpacing int      `toml:"items_vertical_spacing"` // Blank lines between items
	IndicatorColors      []string `toml:"indicator_colors"`       // Dot palette
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Name:                 DefaultName,
		Bg:                   "#ffffff",
		TitleColor:           "#202020",
		TitleFont:            Font{Bold: true},
		DescriptionColor:     "#c7c7c7",
		DescriptionFont:      Font{Faint: true},
		ItemsVerticalSpacing: 1,
		IndicatorColors:      []string{"#b1b149", "#e3a60c", "#ea605e"},
	}
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to the default theme if the name is not found.
func Load(name string) (Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return Theme{}, fmt.Errorf("loading theme %q: %w", name, err)
	}

	// Keys missing from the file keep their built-in values.
	t := Default()
	t.IndicatorColors = nil
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return t, nil
}

// MustLoad is Load for names known to be embedded.
func MustLoad(name string) Theme {
	t, err := Load(name)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Theme) applyDefaults() {
	d := Default()
	if t.Bg == "" {
		t.Bg = d.Bg
	}
	if t.TitleColor == "" {
		t.TitleColor = d.TitleColor
	}
	if t.DescriptionColor == "" {
		t.DescriptionColor = d.DescriptionColor
	}
	if t.ItemsVerticalSpacing < 0 {
		t.ItemsVerticalSpacing = 0
	}
	if len(t.IndicatorColors) == 0 {
		t.IndicatorColors = d.IndicatorColors
	}
}

// Clone returns a copy that shares no mutable state with t.
func (t Theme) Clone() Theme {
	c := t
	if t.ActionTitleFont != nil {
		f := *t.ActionTitleFont
		c.ActionTitleFont = &f
	}
	c.IndicatorColors = append([]string(nil), t.IndicatorColors...)
	return c
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"default", "mocha", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}

// Next returns the available theme after name, wrapping around.
func Next(name string) string {
	names := Available()
	name = strings.ToLower(name)
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
