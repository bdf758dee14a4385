package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/picker"
)

// DebugLogger logs picker state, keystrokes, and notifications to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "datepick-debug.log"

const logDateLayout = "2006-01-02 15:04"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
		debugLog.file = nil
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": msg.Type.String(),
	})
}

// LogPicker logs the picker state after event.
func LogPicker(event string, p *picker.Picker) {
	if !debugEnabled() || p == nil {
		return
	}
	r := p.Range()
	debugLog.log(event, map[string]any{
		"anchor":      p.Anchor().Format(logDateLayout),
		"displayed":   p.Displayed().Format("2006-01"),
		"granularity": p.Granularity().String(),
		"start":       r.Start.Format(logDateLayout),
		"end":         r.End.Format(logDateLayout),
		"open":        p.IsOpen(),
	})
}

// LogNotify logs a delivered change notification.
func LogNotify(selected time.Time, r calendar.DateRange) {
	if !debugEnabled() {
		return
	}
	debugLog.log("NOTIFY", map[string]any{
		"selected": selected.Format(logDateLayout),
		"start":    r.Start.Format(logDateLayout),
		"end":      r.End.Format(logDateLayout),
		"days":     r.Length,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
