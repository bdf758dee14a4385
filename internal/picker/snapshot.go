package picker

import (
	"time"

	"github.com/javiermolinar/datepick/internal/calendar"
)

// Snapshot is the read-only data needed to render the picker once.
type Snapshot struct {
	Title          string // displayed month and year
	Year           int    // displayed year
	WeekdayNames   []string
	MonthNames     []string
	ShowWeekNumber bool
	ShowDays       bool // false in month granularity
	Weeks          []calendar.WeekRow
	Months         [][]calendar.MonthCell
	Display        calendar.DateRange
	Range          calendar.DateRange
	Anchor         time.Time
	Granularity    calendar.Granularity
}

// Snapshot derives the render data from the current state. Cells are rebuilt
// on every call.
func (p *Picker) Snapshot(now time.Time) Snapshot {
	opts := p.calc.Options()
	selected := p.Range()
	display := p.calc.MonthDisplayRange(p.displayed)
	monthNames := p.namer.MonthNames()

	monthSelected := p.granularity == calendar.Month && p.anchor.Year() == p.displayed.Year()

	return Snapshot{
		Title:          p.namer.MonthTitle(p.displayed),
		Year:           p.displayed.Year(),
		WeekdayNames:   p.namer.WeekdayNames(opts.WeekStartsOn),
		MonthNames:     monthNames,
		ShowWeekNumber: opts.ShowWeekNumber,
		ShowDays:       p.granularity != calendar.Month,
		Weeks:          calendar.BuildWeekRows(display, p.displayed, selected, now, opts.WeekStartsOn),
		Months:         calendar.BuildMonthCells(monthNames, p.monthColumns, p.anchor.Month(), monthSelected),
		Display:        display,
		Range:          selected,
		Anchor:         p.anchor,
		Granularity:    p.granularity,
	}
}

// Now returns the picker's clock reading.
func (p *Picker) Now() time.Time {
	return p.clock()
}
