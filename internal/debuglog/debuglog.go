// Package debuglog writes structured debug events as JSON lines.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the fixed path for debug logs.
const DefaultPath = "statusbox-debug.log"

// Event names.
const (
	EventStart          = "DEBUG_START"
	EventEnd            = "DEBUG_END"
	EventKeyPress       = "KEY_PRESS"
	EventStatusShow     = "STATUS_SHOW"
	EventStatusHide     = "STATUS_HIDE"
	EventThemeChange    = "THEME_CHANGE"
	EventIndicatorStart = "INDICATOR_START"
	EventIndicatorStop  = "INDICATOR_STOP"
	EventScreenChange   = "SCREEN_CHANGE"
)

// Logger logs events to a writer. A nil or disabled Logger drops everything.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	enabled bool
	seq     int
	now     func() time.Time
}

// Disabled returns a logger that drops every event.
func Disabled() *Logger {
	return &Logger{}
}

// New returns an enabled logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w, enabled: true, now: time.Now}
}

// Open creates the log file at path and logs the start event.
// When enabled is false no file is created.
func Open(enabled bool, path string) (*Logger, error) {
	if !enabled {
		return Disabled(), nil
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}

	l := New(f)
	l.closer = f
	l.Log(EventStart, map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return l, nil
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled && l.w != nil
}

// Close logs the end event and closes the underlying file, if any. The
// logger drops everything afterwards.
func (l *Logger) Close() error {
	if !l.Enabled() {
		return nil
	}
	l.Log(EventEnd, map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})

	l.mu.Lock()
	l.enabled = false
	l.mu.Unlock()

	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Log writes a structured log entry.
func (l *Logger) Log(event string, data map[string]any) {
	if !l.Enabled() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    l.now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}
