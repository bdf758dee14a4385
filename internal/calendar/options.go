// Package calendar computes selection ranges and month grids for a date picker.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfiguration is returned when calendar options are out of range.
var ErrInvalidConfiguration = errors.New("invalid calendar configuration")

// ErrUnknownGranularity is returned when a granularity name is not recognized.
var ErrUnknownGranularity = errors.New("granularity must be one of day, week, month")

// Defaults applied by DefaultOptions.
const (
	DefaultWeekStartsOn   = time.Saturday
	DefaultDayStartHour   = 0
	DefaultMonthColumns   = 4
	DefaultDisplayWidth   = 64
	DefaultLocale         = "en-US"
	MinDisplayWidth       = 40
	DefaultShowWeekNumber = true
)

// Options configures range computation and grid layout.
type Options struct {
	WeekStartsOn   time.Weekday
	ShowWeekNumber bool
	DayStartHour   int  // hour at which a logical day begins
	ShiftWeeks     bool // week ranges start at DayStartHour instead of midnight
	ShiftMonths    bool // month ranges start at DayStartHour instead of midnight
	MonthColumns   int  // month browser layout, 3 or 4 per row
	DisplayWidth   int  // terminal cells available to the picker
	Locale         string
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		WeekStartsOn:   DefaultWeekStartsOn,
		ShowWeekNumber: DefaultShowWeekNumber,
		DayStartHour:   DefaultDayStartHour,
		MonthColumns:   DefaultMonthColumns,
		DisplayWidth:   DefaultDisplayWidth,
		Locale:         DefaultLocale,
	}
}

// Validate checks that all options are within range. Values are never clamped.
func (o Options) Validate() error {
	if o.WeekStartsOn < time.Sunday || o.WeekStartsOn > time.Saturday {
		return fmt.Errorf("%w: week_starts_on must be in 0..6, got %d", ErrInvalidConfiguration, int(o.WeekStartsOn))
	}
	if o.DayStartHour < 0 || o.DayStartHour > 23 {
		return fmt.Errorf("%w: day_start_hour must be in 0..23, got %d", ErrInvalidConfiguration, o.DayStartHour)
	}
	if o.MonthColumns != 3 && o.MonthColumns != 4 {
		return fmt.Errorf("%w: month_columns must be 3 or 4, got %d", ErrInvalidConfiguration, o.MonthColumns)
	}
	if o.DisplayWidth < MinDisplayWidth {
		return fmt.Errorf("%w: display_width must be at least %d, got %d", ErrInvalidConfiguration, MinDisplayWidth, o.DisplayWidth)
	}
	if strings.TrimSpace(o.Locale) == "" {
		return fmt.Errorf("%w: locale must be set", ErrInvalidConfiguration)
	}
	return nil
}

// Granularity is the unit of a selection.
type Granularity int

const (
	Day Granularity = iota
	Week
	Month
)

var granularityNames = [...]string{"day", "week", "month"}

// Granularities lists every granularity in display order.
func Granularities() []Granularity {
	return []Granularity{Day, Week, Month}
}

func (g Granularity) String() string {
	if g < Day || g > Month {
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
	return granularityNames[g]
}

// ParseGranularity parses "day", "week" or "month" case-insensitively.
func ParseGranularity(s string) (Granularity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range granularityNames {
		if n == name {
			return Granularity(i), nil
		}
	}
	return Day, fmt.Errorf("%w: got %q", ErrUnknownGranularity, s)
}

// MarshalText implements encoding.TextMarshaler.
func (g Granularity) MarshalText() ([]byte, error) {
	if g < Day || g > Month {
		return nil, fmt.Errorf("%w: got %d", ErrUnknownGranularity, int(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Granularity) UnmarshalText(text []byte) error {
	parsed, err := ParseGranularity(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
