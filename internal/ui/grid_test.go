package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/config"
	"github.com/javiermolinar/datepick/internal/picker"
)

func testSnapshot(t *testing.T, a *App, flags selectionFlags) picker.Snapshot {
	t.Helper()
	p, err := a.newPicker(flags)
	if err != nil {
		t.Fatalf("newPicker: %v", err)
	}
	return p.Snapshot(p.Now())
}

func TestGridCmd(t *testing.T) {
	a := newTestApp(t)
	out, err := a.run("grid", "--date", "2024-03-13", "--no-color")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"March 2024", "  # Mon Tue Wed Thu Fri Sat Sun", " 11  11  12  13  14  15  16  17", "January", "2024"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid missing %q:\n%s", want, out)
		}
	}
}

func TestRenderGrid_Layout(t *testing.T) {
	a := newTestApp(t)
	snap := testSnapshot(t, a, selectionFlags{date: "2024-03-13"})

	dayLines := 2 + len(snap.Weeks)
	monthLines := 1 + len(snap.Months)

	beside := strings.Split(strings.TrimSuffix(renderGrid(snap, 200), "\n"), "\n")
	if len(beside) != max(dayLines, monthLines) {
		t.Errorf("wide layout has %d lines, want %d", len(beside), max(dayLines, monthLines))
	}
	if !strings.Contains(beside[0], "March 2024") || !strings.HasSuffix(beside[0], "2024") || strings.Count(beside[0], "2024") != 2 {
		t.Errorf("expected the year beside the title, got %q", beside[0])
	}

	below := strings.Split(strings.TrimSuffix(renderGrid(snap, 40), "\n"), "\n")
	if len(below) != dayLines+1+monthLines {
		t.Errorf("narrow layout has %d lines, want %d", len(below), dayLines+1+monthLines)
	}
	for i, line := range below[:dayLines] {
		if w := ansi.StringWidth(line); w > dayGridWidth(snap) {
			t.Errorf("grid line %d is %d wide, want at most %d", i, w, dayGridWidth(snap))
		}
	}
}

func TestRenderGrid_MonthGranularity(t *testing.T) {
	a := newTestApp(t)
	snap := testSnapshot(t, a, selectionFlags{date: "2024-03-13", granularity: "month"})

	out := renderGrid(snap, 200)
	if strings.Contains(out, "Mon") {
		t.Errorf("month granularity should not print the day grid:\n%s", out)
	}
	if !strings.HasPrefix(out, "March 2024\n") {
		t.Errorf("expected title first, got %q", out)
	}
}

func TestRenderGrid_NoWeekNumbers(t *testing.T) {
	a := newTestApp(t, func(c *config.Config) { c.Calendar.ShowWeekNumber = false })
	snap := testSnapshot(t, a, selectionFlags{date: "2024-03-13"})

	if got, want := dayGridWidth(snap), calendar.DaysInWeek*gridCellWidth; got != want {
		t.Errorf("dayGridWidth = %d, want %d", got, want)
	}
	if strings.Contains(renderGrid(snap, 40), "#") {
		t.Error("week number column printed while disabled")
	}
}

func TestDayColor(t *testing.T) {
	tests := []struct {
		name string
		cell calendar.Cell
		want *color.Color
	}{
		{"plain", calendar.Cell{}, nil},
		{"today", calendar.Cell{Today: true}, colorToday},
		{"out of month", calendar.Cell{OutOfMonth: true}, colorMuted},
		{"selected", calendar.Cell{Selected: true, Today: true}, colorSelected},
		{"selected out of month", calendar.Cell{Selected: true, OutOfMonth: true}, colorSelectedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dayColor(tt.cell); got != tt.want {
				t.Errorf("dayColor returned the wrong color for %+v", tt.cell)
			}
		})
	}
}

func TestPadVisible(t *testing.T) {
	if got := padVisible("\x1b[1mab\x1b[0m", 4); ansi.StringWidth(got) != 4 {
		t.Errorf("padVisible width = %d, want 4", ansi.StringWidth(got))
	}
	if got := padVisible("abcdef", 3); got != "abcdef" {
		t.Errorf("padVisible must not truncate, got %q", got)
	}
}
