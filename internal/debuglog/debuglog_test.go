package debuglog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, s string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestNilAndDisabledAreNoops(t *testing.T) {
	var l *Logger
	assert.False(t, l.Enabled())
	assert.NotPanics(t, func() { l.Log(EventKeyPress, nil) })
	assert.NoError(t, l.Close())

	d := Disabled()
	assert.False(t, d.Enabled())
	assert.NotPanics(t, func() { d.Log(EventKeyPress, nil) })
}

func TestLogWritesSequencedEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Log(EventStatusShow, map[string]any{"surface": "list"})
	l.Log(EventStatusHide, nil)

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 2)
	assert.Equal(t, EventStatusShow, entries[0]["event"])
	assert.Equal(t, "list", entries[0]["surface"])
	assert.EqualValues(t, 1, entries[0]["seq"])
	assert.EqualValues(t, 2, entries[1]["seq"])
	assert.NotEmpty(t, entries[1]["ts"])
}

func TestOpenDisabledCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	l, err := Open(false, path)
	require.NoError(t, err)
	assert.False(t, l.Enabled())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenWritesStartAndEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	l, err := Open(true, path)
	require.NoError(t, err)
	l.Log(EventThemeChange, map[string]any{"theme": "mocha"})
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entries := decodeLines(t, string(data))
	require.Len(t, entries, 3)
	assert.Equal(t, EventStart, entries[0]["event"])
	assert.Equal(t, path, entries[0]["log_file"])
	assert.Equal(t, EventThemeChange, entries[1]["event"])
	assert.Equal(t, EventEnd, entries[2]["event"])
}

func TestOpenFailsOnBadPath(t *testing.T) {
	_, err := Open(true, filepath.Join(t.TempDir(), "missing", "debug.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating debug log")
}

func TestCloseTwice(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
	l.Log(EventKeyPress, nil)

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, EventEnd, entries[0]["event"])
	assert.False(t, l.Enabled())
}
