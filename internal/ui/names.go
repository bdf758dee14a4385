package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/dateutil"
	"github.com/javiermolinar/datepick/internal/locale"
)

func (a *App) namesCmd() *cobra.Command {
	var tag, weekStart string
	var list bool

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Print localized weekday and month names",
		Long: `Print the weekday and month names the picker uses for a locale.

Example:
  datepick names --locale fr-FR --week-starts-on monday
  datepick names --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, t := range locale.Supported() {
					fmt.Fprintln(out, t)
				}
				return nil
			}

			if tag == "" {
				tag = a.config.Calendar.Locale
			}
			namer, err := locale.New(tag)
			if err != nil {
				return err
			}

			opts, err := a.config.CalendarOptions()
			if err != nil {
				return err
			}
			wd := opts.WeekStartsOn
			if weekStart != "" {
				var ok bool
				if wd, ok = dateutil.ParseWeekday(weekStart); !ok {
					return fmt.Errorf("%w: unknown weekday %q", calendar.ErrInvalidConfiguration, weekStart)
				}
			}

			fmt.Fprintf(out, "%s %s\n", formatHeader("Locale:  "), namer.Tag())
			fmt.Fprintf(out, "%s %s\n", formatHeader("Title:   "), namer.MonthTitle(a.now()))
			fmt.Fprintf(out, "%s %s\n", formatHeader("Weekdays:"), strings.Join(namer.WeekdayNames(wd), " "))
			fmt.Fprintf(out, "%s %s\n", formatHeader("Months:  "), strings.Join(namer.MonthNames(), ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "locale", "", "BCP 47 locale tag (default from config)")
	cmd.Flags().StringVar(&weekStart, "week-starts-on", "", "First weekday of the header (default from config)")
	cmd.Flags().BoolVar(&list, "list", false, "List supported locales")
	return cmd
}
