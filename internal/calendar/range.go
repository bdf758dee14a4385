package calendar

import (
	"fmt"
	"time"

	"github.com/javiermolinar/datepick/internal/dateutil"
)

// DaysInWeek is the width of every grid row.
const DaysInWeek = 7

// DateRange is a span of whole days.
// End is exclusive for selection ranges and inclusive for display ranges.
type DateRange struct {
	Start  time.Time
	End    time.Time
	Length int // duration in days
}

// Contains reports whether t is in the half-open interval [Start, End).
func (r DateRange) Contains(t time.Time) bool {
	return IsInRange(t, r)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s - %s (%d days)", r.Start.Format("2006-01-02 15:04"), r.End.Format("2006-01-02 15:04"), r.Length)
}

// IsInRange reports whether start <= t < end.
func IsInRange(t time.Time, r DateRange) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Calculator derives ranges from an anchor date. It is immutable and every
// method is total once NewCalculator succeeds.
type Calculator struct {
	opts Options
}

// NewCalculator validates opts and returns a Calculator.
func NewCalculator(opts Options) (*Calculator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{opts: opts}, nil
}

// Options returns the configuration the calculator was built with.
func (c *Calculator) Options() Options {
	return c.opts
}

// Range returns the selection range of anchor for granularity g.
func (c *Calculator) Range(anchor time.Time, g Granularity) DateRange {
	switch g {
	case Week:
		return c.WeekRange(anchor)
	case Month:
		return c.MonthRange(anchor)
	default:
		return c.DayRange(anchor)
	}
}

// DayRange returns the logical day containing anchor. A logical day starts
// at DayStartHour, so with a 05:00 boundary 03:00 belongs to the previous day.
// End is the next logical day's start, so days tile even when the boundary
// hour is skipped by a DST transition.
func (c *Calculator) DayRange(anchor time.Time) DateRange {
	// MinutesPerDay is positive, FloorMinutes cannot fail.
	day, _ := dateutil.FloorMinutes(anchor, dateutil.MinutesPerDay)
	if dateutil.AtHour(day, c.opts.DayStartHour).After(anchor) {
		day = dateutil.AddDays(day, -1)
	}
	return DateRange{
		Start:  dateutil.AtHour(day, c.opts.DayStartHour),
		End:    dateutil.AtHour(dateutil.AddDays(day, 1), c.opts.DayStartHour),
		Length: 1,
	}
}

// WeekRange returns the week containing anchor, starting on WeekStartsOn.
// With ShiftWeeks the week is made of logical days.
func (c *Calculator) WeekRange(anchor time.Time) DateRange {
	start, hour := dateutil.StartOfWeek(anchor, c.opts.WeekStartsOn), 0
	if c.opts.ShiftWeeks {
		hour = c.opts.DayStartHour
		start = dateutil.AtHour(dateutil.StartOfWeek(c.DayRange(anchor).Start, c.opts.WeekStartsOn), hour)
	}
	return DateRange{
		Start:  start,
		End:    dateutil.AtHour(dateutil.AddDays(start, DaysInWeek), hour),
		Length: DaysInWeek,
	}
}

// MonthRange returns the calendar month containing anchor.
// With ShiftMonths the month is made of logical days.
func (c *Calculator) MonthRange(anchor time.Time) DateRange {
	start, hour := dateutil.StartOfMonth(anchor), 0
	if c.opts.ShiftMonths {
		hour = c.opts.DayStartHour
		start = dateutil.AtHour(dateutil.StartOfMonth(c.DayRange(anchor).Start), hour)
	}
	end := dateutil.AtHour(dateutil.AddMonths(start, 1), hour)
	return DateRange{
		Start:  start,
		End:    end,
		Length: dateutil.DaysBetween(start, end),
	}
}

// MonthDisplayRange returns the week-aligned span of days shown for anchor's
// month. It starts on WeekStartsOn, covers whole weeks, and its End is the
// last displayed day (inclusive). Days carry DayStartHour so that every
// selection range marks exactly the days it covers.
func (c *Calculator) MonthDisplayRange(anchor time.Time) DateRange {
	month := c.MonthRange(anchor)
	start := dateutil.AtHour(dateutil.StartOfWeek(month.Start, c.opts.WeekStartsOn), c.opts.DayStartHour)
	days := dateutil.DaysBetween(start, month.End)
	weeks := (days + DaysInWeek - 1) / DaysInWeek
	length := weeks * DaysInWeek
	return DateRange{
		Start:  start,
		End:    dateutil.AtHour(dateutil.AddDays(start, length-1), c.opts.DayStartHour),
		Length: length,
	}
}
