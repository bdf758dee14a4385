// Package ui implements the datepick command line.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/config"
	"github.com/javiermolinar/datepick/internal/dateutil"
	"github.com/javiermolinar/datepick/internal/export"
	"github.com/javiermolinar/datepick/internal/picker"
	"github.com/javiermolinar/datepick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
	now    func() time.Time
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, now: time.Now}

	var flags selectionFlags
	var notify string
	var static bool

	a.root = &cobra.Command{
		Use:   "datepick",
		Short: "Pick a day, week or month from the terminal",
		Long: `datepick opens a calendar picker in the terminal and prints the
selected range when you quit.

A selection is a day, a week or a month around the date you pick. Week
and month boundaries follow the [calendar] section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := export.ParseFormat(flags.format)
			if err != nil {
				return err
			}
			opts, err := a.pickerOptions(flags, notify, static)
			if err != nil {
				return err
			}

			res, err := tui.Run(a.config, a.debug, nil, opts...)
			if err != nil {
				return err
			}
			return export.Write(cmd.OutOrStdout(), format, res.Selection)
		},
	}

	flags.register(a.root)
	a.root.Flags().StringVar(&notify, "notify", "", "When to report changes: immediate or close (default from config)")
	a.root.Flags().BoolVar(&static, "static", false, "Keep the picker open; esc does nothing")

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.rangeCmd())
	a.root.AddCommand(a.gridCmd())
	a.root.AddCommand(a.namesCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "datepick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// selectionFlags are shared by the commands that start from a date.
type selectionFlags struct {
	date        string
	granularity string
	format      string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Anchor date: YYYY-MM-DD, today, tomorrow, monday, next-week, ...")
	cmd.Flags().StringVarP(&f.granularity, "granularity", "g", "", "day, week or month (default from config)")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(export.Text), "Output format: text, json, yaml or ics")
}

// calculator builds a range calculator from the loaded config.
func (a *App) calculator() (*calendar.Calculator, error) {
	opts, err := a.config.CalendarOptions()
	if err != nil {
		return nil, err
	}
	return calendar.NewCalculator(opts)
}

// granularity returns the flag value, or the configured one when empty.
func (a *App) granularity(flag string) (calendar.Granularity, error) {
	if flag == "" {
		flag = a.config.Picker.Granularity
	}
	return calendar.ParseGranularity(flag)
}

// anchor parses a --date value. Plain dates are moved to the start of their
// logical day so that a late day start hour does not select the day before.
func (a *App) anchor(date string) (time.Time, error) {
	t, err := dateutil.ParseRelativeDate(date, a.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --date %q: %w", date, err)
	}
	if _, err := time.Parse("2006-01-02", date); err == nil {
		t = dateutil.AtHour(t, a.config.Calendar.DayStartHour)
	}
	return t, nil
}

// pickerOptions turns command line flags into picker options. They are
// applied after the config file options and override them.
func (a *App) pickerOptions(flags selectionFlags, notify string, static bool) ([]picker.Option, error) {
	var opts []picker.Option
	if flags.date != "" {
		t, err := a.anchor(flags.date)
		if err != nil {
			return nil, err
		}
		opts = append(opts, picker.WithAnchor(t))
	}
	if flags.granularity != "" {
		g, err := calendar.ParseGranularity(flags.granularity)
		if err != nil {
			return nil, err
		}
		opts = append(opts, picker.WithGranularity(g))
	}
	if notify != "" {
		mode, err := picker.ParseNotifyMode(notify)
		if err != nil {
			return nil, err
		}
		opts = append(opts, picker.WithNotifyMode(mode))
	}
	if static {
		opts = append(opts, picker.WithStatic(true))
	}
	return opts, nil
}
