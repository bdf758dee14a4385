// Package dateutil provides wall-clock date arithmetic and date parsing utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Validation errors.
var (
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD or YYYY-MM-DDTHH:MM format")
	ErrInvalidPrecision  = errors.New("minute precision must be greater than 0")
)

// MinutesPerDay is the number of wall-clock minutes in a calendar day.
const MinutesPerDay = 24 * 60

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04"
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a weekday name ("saturday") case-insensitively.
func ParseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdayMap[strings.ToLower(strings.TrimSpace(s))]
	return wd, ok
}

// StartOfDay returns t with the time set to midnight.
func StartOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// StartOfWeek returns midnight of the first day of the week containing t,
// where weeks start on weekStartsOn.
func StartOfWeek(t time.Time, weekStartsOn time.Weekday) time.Time {
	cfg := &now.Config{WeekStartDay: weekStartsOn}
	return cfg.With(t).BeginningOfWeek()
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return now.With(t).BeginningOfMonth()
}

// AtHour returns t's calendar day at the given hour.
func AtHour(t time.Time, hour int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, t.Location())
}

// AddDays adds n calendar days, keeping the wall-clock time of day.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths adds n calendar months. The day of month is clamped to the
// length of the target month, so Jan 31 + 1 month is the last day of February.
func AddMonths(t time.Time, n int) time.Time {
	y, m, _ := t.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	return SetMonth(t, target.Year(), target.Month())
}

// AddYears adds n years with the same clamping as AddMonths.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, n*12)
}

// SetMonth moves t to the given year and month, keeping the day of month
// (clamped to the month length) and the time of day.
func SetMonth(t time.Time, year int, month time.Month) time.Time {
	day := min(t.Day(), DaysInMonth(year, month))
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns the number of calendar days from a to b, ignoring the
// time of day. It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FloorMinutes rounds t down to the closest multiple of precision minutes
// counted from the start of t's calendar day. Seconds are dropped.
// The computation uses wall-clock minutes, so DST transitions do not shift
// the result.
func FloorMinutes(t time.Time, precision int) (time.Time, error) {
	if precision <= 0 {
		return time.Time{}, fmt.Errorf("%w: got %d", ErrInvalidPrecision, precision)
	}
	elapsed := t.Hour()*60 + t.Minute()
	floored := (elapsed / precision) * precision
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, floored, 0, 0, t.Location()), nil
}

// WeekOfYear returns the week number of t for weeks starting on weekStartsOn.
// Week 1 is the week that contains January 1; the last days of December can
// therefore belong to week 1 of the following year.
func WeekOfYear(t time.Time, weekStartsOn time.Weekday) int {
	week := StartOfWeek(t, weekStartsOn)
	year := t.Year()
	base := StartOfWeek(time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location()), weekStartsOn)
	next := StartOfWeek(time.Date(year+1, time.January, 1, 0, 0, 0, 0, t.Location()), weekStartsOn)
	if !week.Before(next) {
		base = next
	}
	return DaysBetween(base, week)/7 + 1
}

// ParseDate parses a date string in YYYY-MM-DD or YYYY-MM-DDTHH:MM format
// in the given location. If the string is empty, returns the current time.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if s == "" {
		return time.Now().In(loc), nil
	}
	if t, err := time.ParseInLocation(dateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo
//   - Absolute date: "2025-01-15" or "2025-01-15T06:30"
//   - Keywords: "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Prefixed: "next-monday", "last-friday", "next-week", "last-week",
//     "next-month", "last-month"
//
// Relative results keep the time of day of relativeTo.
// All inputs are case-insensitive.
// Returns ErrInvalidDateFormat for unrecognized input.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return relativeTo, nil
	case "tomorrow":
		return AddDays(relativeTo, 1), nil
	case "yesterday":
		return AddDays(relativeTo, -1), nil
	case "next-week":
		return AddDays(relativeTo, 7), nil
	case "last-week":
		return AddDays(relativeTo, -7), nil
	case "next-month":
		return AddMonths(relativeTo, 1), nil
	case "last-month":
		return AddMonths(relativeTo, -1), nil
	}

	if name, ok := strings.CutPrefix(input, "next-"); ok {
		if targetDay, ok := weekdayMap[name]; ok {
			return nextWeekday(relativeTo, targetDay), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}
	if name, ok := strings.CutPrefix(input, "last-"); ok {
		if targetDay, ok := weekdayMap[name]; ok {
			return previousWeekday(relativeTo, targetDay), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(relativeTo, targetDay), nil
	}

	return ParseDate(strings.ToUpper(input), relativeTo.Location())
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return AddDays(today, daysUntil)
}

// previousWeekday returns the last occurrence of the given weekday before today.
func previousWeekday(today time.Time, target time.Weekday) time.Time {
	daysSince := int(today.Weekday()) - int(target)
	if daysSince <= 0 {
		daysSince += 7
	}
	return AddDays(today, -daysSince)
}
