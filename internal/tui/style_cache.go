package tui

import "github.com/charmbracelet/lipgloss"

// StyleCache stores width-specific styles to avoid per-cell mutations.
type StyleCache struct {
	WeekdayHeader lipgloss.Style
	WeekNumber    lipgloss.Style
	Day           lipgloss.Style
	OutOfMonth    lipgloss.Style
	Selected      lipgloss.Style
	SelectedOut   lipgloss.Style
	Cursor        lipgloss.Style
	Month         lipgloss.Style
	MonthSelected lipgloss.Style
	MonthCursor   lipgloss.Style
}

// NewStyleCache precomputes the grid styles for the given month column width.
func NewStyleCache(styles *Styles, monthWidth int) StyleCache {
	monthWidth = max(1, monthWidth)
	return StyleCache{
		WeekdayHeader: styles.WeekdayHeaderStyle.Width(dayCellWidth),
		WeekNumber:    styles.WeekNumberStyle.Width(weekNumberWidth),
		Day:           styles.DayStyle.Width(dayCellWidth),
		OutOfMonth:    styles.OutOfMonthStyle.Width(dayCellWidth),
		Selected:      styles.SelectedStyle.Width(dayCellWidth),
		SelectedOut:   styles.SelectedOutStyle.Width(dayCellWidth),
		Cursor:        styles.CursorStyle.Width(dayCellWidth),
		Month:         styles.MonthStyle.Width(monthWidth),
		MonthSelected: styles.MonthSelectedStyle.Width(monthWidth),
		MonthCursor:   styles.CursorStyle.Align(lipgloss.Center).Width(monthWidth),
	}
}
