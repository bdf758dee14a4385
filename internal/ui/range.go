package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/datepick/internal/dateutil"
	"github.com/javiermolinar/datepick/internal/export"
)

func (a *App) rangeCmd() *cobra.Command {
	var flags selectionFlags
	var month string
	var year int

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the day, week or month range around a date",
		Long: `Print the range that the picker would select for a date.

Ranges are half-open: the end is the first instant after the range.

Example:
  datepick range --date 2024-03-13 -g week
  datepick range --month mar --year 2025 -g month --format ics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := export.ParseFormat(flags.format)
			if err != nil {
				return err
			}
			g, err := a.granularity(flags.granularity)
			if err != nil {
				return err
			}
			calc, err := a.calculator()
			if err != nil {
				return err
			}

			var anchor time.Time
			if month != "" || year != 0 {
				anchor, err = a.monthAnchor(month, year)
			} else {
				anchor, err = a.anchor(flags.date)
			}
			if err != nil {
				return err
			}

			sel := export.Selection{
				Anchor:      anchor,
				Granularity: g,
				Range:       calc.Range(anchor, g),
			}
			return export.Write(cmd.OutOrStdout(), format, sel)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&month, "month", "", "Month name or number (jan, March, 3); selects its first day")
	cmd.Flags().IntVar(&year, "year", 0, "Year for --month (default current year)")
	cmd.MarkFlagsMutuallyExclusive("date", "month")
	cmd.MarkFlagsMutuallyExclusive("date", "year")
	return cmd
}

// monthAnchor returns the start of the first logical day of a month. An
// empty month keeps the current month.
func (a *App) monthAnchor(month string, year int) (time.Time, error) {
	now := a.now()
	m := now.Month()
	if month = strings.TrimSpace(month); month != "" {
		var parsed datetime.Month
		if err := parsed.Parse(month); err != nil {
			return time.Time{}, fmt.Errorf("parsing --month %q: %w", month, err)
		}
		m = time.Month(parsed)
	}
	if year == 0 {
		year = now.Year()
	}
	if year < 1 || year > 9999 {
		return time.Time{}, errors.New("--year must be in 1..9999")
	}
	return dateutil.AtHour(time.Date(year, m, 1, 0, 0, 0, 0, now.Location()), a.config.Calendar.DayStartHour), nil
}
