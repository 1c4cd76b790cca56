package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		height  int
		want    []string
	}{
		{name: "pads short lines and rows", content: "ab\nc", width: 4, height: 3, want: []string{"ab  ", "c   ", "    "}},
		{name: "cuts long lines", content: "abcdef", width: 3, height: 1, want: []string{"abc"}},
		{name: "drops extra rows", content: "a\nb\nc", width: 1, height: 2, want: []string{"a", "b"}},
		{name: "exact fit", content: "ab\ncd", width: 2, height: 2, want: []string{"ab", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fill(tt.content, tt.width, tt.height, lipgloss.Color("#000000"))
			assert.Equal(t, tt.want, strings.Split(ansi.Strip(got), "\n"))
		})
	}
}

func TestFillEmptyBox(t *testing.T) {
	assert.Equal(t, "", Fill("abc", 0, 3, nil))
	assert.Equal(t, "", Fill("abc", 3, 0, nil))
}

func TestFillPadsWithBackground(t *testing.T) {
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})

	out := Fill("x", 5, 1, lipgloss.Color("#112233"))
	bgSeq := "\x1b[48;2;17;34;51m"
	idx := strings.Index(out, bgSeq)
	assert.Equal(t, 1, idx, "padding should start right after the content")
	assert.Equal(t, "x    ", ansi.Strip(out))
}
