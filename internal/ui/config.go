package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/datepick/internal/config"
	"github.com/javiermolinar/datepick/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  datepick config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.OutOrStdout(), os.Stdin, config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(out io.Writer, in io.Reader, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(out, reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Calendar.WeekStartsOn = promptValue(out, reader, "Week starts on (weekday or 0-6)", cfg.Calendar.WeekStartsOn)
	cfg.Calendar.ShowWeekNumber = promptBool(out, reader, "Show week numbers", cfg.Calendar.ShowWeekNumber)
	cfg.Calendar.DayStartHour = promptInt(out, reader, "Day start hour (0-23)", cfg.Calendar.DayStartHour)
	cfg.Calendar.ShiftWeeks = promptBool(out, reader, "Shift weeks to the day start hour", cfg.Calendar.ShiftWeeks)
	cfg.Calendar.ShiftMonths = promptBool(out, reader, "Shift months to the day start hour", cfg.Calendar.ShiftMonths)
	cfg.Calendar.MonthColumns = promptInt(out, reader, "Month columns (3 or 4)", cfg.Calendar.MonthColumns)
	cfg.Calendar.Locale = promptValue(out, reader, "Locale", cfg.Calendar.Locale)
	cfg.Picker.Granularity = promptValue(out, reader, "Granularity (day, week, month)", cfg.Picker.Granularity)
	cfg.Picker.Notify = promptValue(out, reader, "Notify (immediate, close)", cfg.Picker.Notify)
	cfg.UI.Theme = promptTheme(out, reader, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[calendar]")
	fmt.Fprintf(out, "  week_starts_on     = %s\n", cfg.Calendar.WeekStartsOn)
	fmt.Fprintf(out, "  show_week_number   = %t\n", cfg.Calendar.ShowWeekNumber)
	fmt.Fprintf(out, "  day_start_hour     = %d\n", cfg.Calendar.DayStartHour)
	fmt.Fprintf(out, "  shift_weeks        = %t\n", cfg.Calendar.ShiftWeeks)
	fmt.Fprintf(out, "  shift_months       = %t\n", cfg.Calendar.ShiftMonths)
	fmt.Fprintf(out, "  month_columns      = %d\n", cfg.Calendar.MonthColumns)
	fmt.Fprintf(out, "  display_width      = %d\n", cfg.Calendar.DisplayWidth)
	fmt.Fprintf(out, "  locale             = %s\n", cfg.Calendar.Locale)
	fmt.Fprintln(out, "\n[picker]")
	fmt.Fprintf(out, "  granularity        = %s\n", cfg.Picker.Granularity)
	fmt.Fprintf(out, "  notify             = %s\n", cfg.Picker.Notify)
	fmt.Fprintf(out, "  notify_on_navigate = %t\n", cfg.Picker.NotifyOnNavigate)
	fmt.Fprintf(out, "  static             = %t\n", cfg.Picker.Static)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme              = %s\n", cfg.UI.Theme)
}

func promptYesNo(out io.Writer, reader *bufio.Reader, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(out io.Writer, reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(out io.Writer, reader *bufio.Reader, label string, current int) int {
	for {
		value := promptValue(out, reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptBool(out io.Writer, reader *bufio.Reader, label string, current bool) bool {
	for {
		value := promptValue(out, reader, label, strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Invalid value %q, use true or false\n", value)
	}
}

func promptTheme(out io.Writer, reader *bufio.Reader, current string) string {
	if !theme.IsAvailable(current) {
		current = theme.DefaultName
	}
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(out, reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
