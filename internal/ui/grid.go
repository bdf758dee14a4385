package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/locale"
	"github.com/javiermolinar/datepick/internal/picker"
)

// Grid layout.
const (
	gridCellWidth   = 4 // one space and a right-aligned day number
	gridWeekNoWidth = 3
	gridGap         = 4 // between the day grid and the month list
)

func (a *App) gridCmd() *cobra.Command {
	var date, granularity string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the month grid around a date",
		Long: `Print the calendar the picker would show for a date, with the
selected range highlighted and the month list of the displayed year.

The month list goes beside the grid when the terminal is wide enough,
below it otherwise.

Example:
  datepick grid --date next-month -g week`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			p, err := a.newPicker(selectionFlags{date: date, granularity: granularity})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderGrid(p.Snapshot(p.Now()), termWidth()))
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Anchor date: YYYY-MM-DD, today, tomorrow, monday, next-week, ...")
	cmd.Flags().StringVarP(&granularity, "granularity", "g", "", "day, week or month (default from config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// newPicker builds a picker from the config, overridden by flags.
func (a *App) newPicker(flags selectionFlags) (*picker.Picker, error) {
	calc, err := a.calculator()
	if err != nil {
		return nil, err
	}
	namer, err := locale.New(a.config.Calendar.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", calendar.ErrInvalidConfiguration, err)
	}
	opts, err := a.config.PickerOptions()
	if err != nil {
		return nil, err
	}
	fromFlags, err := a.pickerOptions(flags, "", false)
	if err != nil {
		return nil, err
	}
	opts = append(opts, picker.WithClock(a.now))
	return picker.New(calc, namer, append(opts, fromFlags...)...)
}

// renderGrid lays out the day grid and the month list for a terminal of
// the given width.
func renderGrid(snap picker.Snapshot, width int) string {
	months := monthListLines(snap)
	if !snap.ShowDays {
		return strings.Join(append([]string{formatHeader(snap.Title), ""}, months...), "\n") + "\n"
	}

	days := dayGridLines(snap)
	gridW := dayGridWidth(snap)
	monthsW := 0
	for _, line := range months {
		monthsW = max(monthsW, ansi.StringWidth(line))
	}

	var lines []string
	if width >= gridW+gridGap+monthsW {
		for i := range max(len(days), len(months)) {
			var left, right string
			if i < len(days) {
				left = days[i]
			}
			if i < len(months) {
				right = months[i]
			}
			if right == "" {
				lines = append(lines, left)
				continue
			}
			lines = append(lines, padVisible(left, gridW+gridGap)+right)
		}
	} else {
		lines = append(lines, days...)
		lines = append(lines, "")
		lines = append(lines, months...)
	}
	return strings.Join(lines, "\n") + "\n"
}

func dayGridWidth(snap picker.Snapshot) int {
	w := calendar.DaysInWeek * gridCellWidth
	if snap.ShowWeekNumber {
		w += gridWeekNoWidth
	}
	return w
}

// dayGridLines renders the title, the weekday header and one line per week.
func dayGridLines(snap picker.Snapshot) []string {
	gridW := dayGridWidth(snap)
	title := snap.Title
	pad := max(0, (gridW-ansi.StringWidth(title))/2)
	lines := []string{strings.Repeat(" ", pad) + formatHeader(title)}

	var header strings.Builder
	if snap.ShowWeekNumber {
		header.WriteString(formatMuted(fmt.Sprintf("%*s", gridWeekNoWidth, "#")))
	}
	for _, name := range snap.WeekdayNames {
		header.WriteString(" ")
		header.WriteString(formatHeader(fmt.Sprintf("%*s", gridCellWidth-1, ansi.Truncate(name, gridCellWidth-1, ""))))
	}
	lines = append(lines, header.String())

	for _, week := range snap.Weeks {
		var row strings.Builder
		if snap.ShowWeekNumber {
			row.WriteString(colorWeekNumber.Sprintf("%*d", gridWeekNoWidth, week.Number))
		}
		for _, cell := range week.Cells {
			text := fmt.Sprintf("%*d", gridCellWidth-1, cell.Date.Day())
			if c := dayColor(cell); c != nil {
				text = c.Sprint(text)
			}
			row.WriteString(" ")
			row.WriteString(text)
		}
		lines = append(lines, row.String())
	}
	return lines
}

// dayColor returns the color of a day cell, nil for plain days.
func dayColor(cell calendar.Cell) *color.Color {
	switch {
	case cell.Selected && cell.OutOfMonth:
		return colorSelectedOut
	case cell.Selected:
		return colorSelected
	case cell.Today:
		return colorToday
	case cell.OutOfMonth:
		return colorMuted
	default:
		return nil
	}
}

// monthListLines renders the year followed by the month browser rows.
func monthListLines(snap picker.Snapshot) []string {
	nameW := 0
	for _, name := range snap.MonthNames {
		nameW = max(nameW, ansi.StringWidth(name))
	}

	lines := []string{formatHeader(strconv.Itoa(snap.Year))}
	for _, row := range snap.Months {
		cells := make([]string, len(row))
		for i, cell := range row {
			text := padVisible(cell.Name, nameW)
			if cell.Selected {
				text = colorSelected.Sprint(text)
			}
			cells[i] = text
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

// padVisible pads s with spaces to width terminal cells, ignoring escape
// sequences.
func padVisible(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
