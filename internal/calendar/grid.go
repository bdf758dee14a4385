package calendar

import (
	"time"

	"github.com/javiermolinar/datepick/internal/dateutil"
)

// MonthsInYear is the number of entries in the month browser.
const MonthsInYear = 12

// Cell is one day of the month grid. Cells are derived on every render and
// never mutated.
type Cell struct {
	Date       time.Time
	OutOfMonth bool // belongs to the month before or after the displayed one
	Today      bool
	Selected   bool
}

// WeekRow is one row of the month grid.
type WeekRow struct {
	Number int // week of year of the first cell
	Cells  []Cell
}

// MonthCell is one entry of the month browser.
type MonthCell struct {
	Month    time.Month
	Name     string
	Selected bool
}

// BuildDateGrid splits the display range into rows of seven dates,
// each Start + i days.
func BuildDateGrid(display DateRange) [][]time.Time {
	rows := make([][]time.Time, 0, (display.Length+DaysInWeek-1)/DaysInWeek)
	for i := 0; i < display.Length; i += DaysInWeek {
		row := make([]time.Time, 0, DaysInWeek)
		for j := i; j < min(i+DaysInWeek, display.Length); j++ {
			row = append(row, dateutil.AddDays(display.Start, j))
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildMonthGrid lays out month names in rows of columns entries.
// Names are kept in the order given, which callers provide January first.
func BuildMonthGrid(names []string, columns int) [][]string {
	if columns <= 0 {
		columns = DefaultMonthColumns
	}
	rows := make([][]string, 0, (len(names)+columns-1)/columns)
	for i := 0; i < len(names); i += columns {
		rows = append(rows, names[i:min(i+columns, len(names))])
	}
	return rows
}

// IsOutOfDisplayedMonth reports whether date falls outside reference's month.
func IsOutOfDisplayedMonth(date, reference time.Time) bool {
	return date.Month() != reference.Month() || date.Year() != reference.Year()
}

// WeekNumber returns the week number shown in front of a grid row.
// Only the first date of the row is considered.
func WeekNumber(row []time.Time, weekStartsOn time.Weekday) int {
	if len(row) == 0 {
		return 0
	}
	return dateutil.WeekOfYear(row[0], weekStartsOn)
}

// BuildWeekRows derives the flagged cells of the month grid.
func BuildWeekRows(display DateRange, reference time.Time, selected DateRange, now time.Time, weekStartsOn time.Weekday) []WeekRow {
	grid := BuildDateGrid(display)
	rows := make([]WeekRow, 0, len(grid))
	for _, dates := range grid {
		cells := make([]Cell, len(dates))
		for i, d := range dates {
			cells[i] = Cell{
				Date:       d,
				OutOfMonth: IsOutOfDisplayedMonth(d, reference),
				Today:      dateutil.SameDay(d, now),
				Selected:   selected.Contains(d),
			}
		}
		rows = append(rows, WeekRow{
			Number: WeekNumber(dates, weekStartsOn),
			Cells:  cells,
		})
	}
	return rows
}

// BuildMonthCells lays out the month browser. When hasSelection is false no
// month is marked.
func BuildMonthCells(names []string, columns int, selected time.Month, hasSelection bool) [][]MonthCell {
	grid := BuildMonthGrid(names, columns)
	rows := make([][]MonthCell, 0, len(grid))
	month := time.January
	for _, row := range grid {
		cells := make([]MonthCell, len(row))
		for i, name := range row {
			cells[i] = MonthCell{
				Month:    month,
				Name:     name,
				Selected: hasSelection && month == selected,
			}
			month++
		}
		rows = append(rows, cells)
	}
	return rows
}
