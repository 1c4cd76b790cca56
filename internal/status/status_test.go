package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var s Status

	assert.False(t, s.Loading)
	assert.False(t, s.HasTitle())
	assert.False(t, s.HasDescription())
	assert.False(t, s.HasImage())
	assert.False(t, s.HasAction())
	assert.Empty(t, s.Text())
}

func TestSimpleLoading(t *testing.T) {
	s := SimpleLoading()

	assert.True(t, s.Loading)
	assert.False(t, s.HasTitle())
	assert.False(t, s.HasAction())
}

func TestText(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{name: "title only", status: Status{Title: "Error"}, want: "Error"},
		{name: "description only", status: Status{Description: "Loading…"}, want: "Loading…"},
		{name: "both", status: Status{Title: "Error", Description: "Try again"}, want: "Error\nTry again"},
		{name: "neither", status: Status{ActionTitle: "Retry"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Text())
		})
	}
}

func TestHasActionIgnoresTitle(t *testing.T) {
	assert.False(t, Status{ActionTitle: "Retry"}.HasAction())
	assert.True(t, Status{Action: func() {}}.HasAction())
}
