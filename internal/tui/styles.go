// Package tui provides the terminal date picker.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/datepick/internal/tui/theme"
)

// Fixed column widths of the day grid.
const (
	dayCellWidth    = 4
	weekNumberWidth = 4
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorSelected    lipgloss.Color
	colorWeekNumber  lipgloss.Color
	colorWarning     lipgloss.Color

	colorSelectedBg    lipgloss.Color
	colorSelectedOutBg lipgloss.Color

	colorTextOnAccent   lipgloss.Color
	colorTextOnSelected lipgloss.Color

	// App container
	AppStyle lipgloss.Style

	// Title line
	TitleStyle     lipgloss.Style
	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style

	// Grid borders
	BorderStyle lipgloss.Style

	// Day grid
	WeekdayHeaderStyle lipgloss.Style
	WeekNumberStyle    lipgloss.Style
	DayStyle           lipgloss.Style
	OutOfMonthStyle    lipgloss.Style
	SelectedStyle      lipgloss.Style
	SelectedOutStyle   lipgloss.Style
	CursorStyle        lipgloss.Style

	// Month browser
	YearStyle          lipgloss.Style
	MonthStyle         lipgloss.Style
	MonthSelectedStyle lipgloss.Style

	// Footer
	StatusStyle  lipgloss.Style
	WarningStyle lipgloss.Style
	HelpStyle    lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorToday = palette.Today
	s.colorSelected = palette.Selected
	s.colorWeekNumber = palette.WeekNumber
	s.colorWarning = palette.Warning
	s.colorSelectedBg = palette.SelectedBg
	s.colorSelectedOutBg = palette.SelectedOutBg
	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnSelected = palette.TextOnSelected

	base := lipgloss.NewStyle().Background(s.colorBg)

	s.AppStyle = base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Padding(0, 1)

	s.TitleStyle = base.
		Bold(true).
		Foreground(s.colorAccent)
	s.TabStyle = base.
		Foreground(s.colorFgMuted)
	s.TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent)

	s.BorderStyle = base.Foreground(s.colorBgSelection)

	s.WeekdayHeaderStyle = base.
		Bold(true).
		Align(lipgloss.Right).
		Foreground(s.colorAccent)
	s.WeekNumberStyle = base.
		Align(lipgloss.Right).
		Foreground(s.colorWeekNumber)

	s.DayStyle = base.
		Align(lipgloss.Right).
		Foreground(s.colorFg)
	s.OutOfMonthStyle = s.DayStyle.
		Foreground(s.colorFgMuted)
	s.SelectedStyle = s.DayStyle.
		Bold(true).
		Foreground(s.colorTextOnSelected).
		Background(s.colorSelectedBg)
	s.SelectedOutStyle = s.DayStyle.
		Foreground(s.colorFgMuted).
		Background(s.colorSelectedOutBg)
	s.CursorStyle = s.DayStyle.
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBgSelection)

	s.YearStyle = base.
		Bold(true).
		Foreground(s.colorAccent)
	s.MonthStyle = base.
		Align(lipgloss.Center).
		Foreground(s.colorFg)
	s.MonthSelectedStyle = s.MonthStyle.
		Bold(true).
		Foreground(s.colorTextOnSelected).
		Background(s.colorSelectedBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight)
	s.WarningStyle = s.StatusStyle.
		Foreground(s.colorWarning)
	s.HelpStyle = base.
		Foreground(s.colorFgMuted)

	return s
}

// TodayStyle marks today on top of an already resolved cell style.
func (s *Styles) TodayStyle(style lipgloss.Style, selected bool) lipgloss.Style {
	style = style.Bold(true).Underline(true)
	if !selected {
		style = style.Foreground(s.colorToday)
	}
	return style
}
