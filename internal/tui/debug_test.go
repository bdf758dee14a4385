package tui

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/javiermolinar/datepick/internal/calendar"
)

func TestDebugLogger_WritesJSONLines(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(func() { debugLog = nil })

	if err := InitDebugLogger(true); err != nil {
		t.Fatalf("InitDebugLogger: %v", err)
	}

	m, _ := newTestModel(t)
	m, _ = press(t, m, runeKey("l"), keyEnter)
	LogError("copy range", errors.New("boom"))
	CloseDebugLogger()

	f, err := os.Open(DebugLogPath)
	if err != nil {
		t.Fatalf("opening debug log: %v", err)
	}
	defer f.Close()

	var events []string
	var notify map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", scanner.Text(), err)
		}
		event, _ := entry["event"].(string)
		events = append(events, event)
		if event == "NOTIFY" {
			notify = entry
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	want := []string{"DEBUG_START", "KEY_PRESS", "KEY_PRESS", "NOTIFY", "SELECT", "ERROR", "DEBUG_END"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, events[i], want[i])
		}
	}
	if notify["start"] != "2024-03-14 00:00" || notify["days"] != float64(1) {
		t.Errorf("unexpected NOTIFY entry: %v", notify)
	}
}

func TestDebugLogger_Disabled(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(func() { debugLog = nil })

	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("InitDebugLogger: %v", err)
	}
	LogNotify(testNow, calendar.DateRange{Start: testNow, End: testNow.Add(24 * time.Hour), Length: 1})
	CloseDebugLogger()

	if _, err := os.Stat(DebugLogPath); !os.IsNotExist(err) {
		t.Errorf("expected no debug log file, stat err = %v", err)
	}
}
