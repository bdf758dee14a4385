package calendar

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/javiermolinar/datepick/internal/dateutil"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func newTestCalculator(t *testing.T, mutate func(*Options)) *Calculator {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	calc, err := NewCalculator(opts)
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

// anchors returns every 7th hour of 2024, which visits every hour of day and
// every weekday across month and year boundaries.
func anchors(loc *time.Location) []time.Time {
	var out []time.Time
	for a := time.Date(2023, 12, 20, 0, 30, 0, 0, loc); a.Year() < 2025; a = a.Add(7 * time.Hour) {
		out = append(out, a)
	}
	return out
}

func locations(t *testing.T) []*time.Location {
	locs := []*time.Location{time.UTC}
	if paris, err := time.LoadLocation("Europe/Paris"); err == nil {
		locs = append(locs, paris)
	} else {
		t.Logf("Europe/Paris unavailable: %v", err)
	}
	return locs
}

func TestWeekRange_Scenario(t *testing.T) {
	calc := newTestCalculator(t, func(o *Options) { o.WeekStartsOn = time.Saturday })

	got := calc.WeekRange(time.Date(2024, 3, 15, 14, 20, 0, 0, time.UTC))
	if want := at(2024, 3, 9, 0); !got.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", got.Start, want)
	}
	if want := at(2024, 3, 16, 0); !got.End.Equal(want) {
		t.Errorf("End = %v, want %v", got.End, want)
	}
	if got.Length != 7 {
		t.Errorf("Length = %d, want 7", got.Length)
	}
}

func TestMonthRange_Scenario(t *testing.T) {
	calc := newTestCalculator(t, nil)

	got := calc.MonthRange(at(2024, 2, 15, 12))
	if want := at(2024, 2, 1, 0); !got.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", got.Start, want)
	}
	if want := at(2024, 3, 1, 0); !got.End.Equal(want) {
		t.Errorf("End = %v, want %v", got.End, want)
	}
	if got.Length != 29 {
		t.Errorf("Length = %d, want 29", got.Length)
	}
}

func TestDayRange_DayStartHour(t *testing.T) {
	tests := []struct {
		name         string
		dayStartHour int
		anchor       time.Time
		wantStart    time.Time
	}{
		{"before boundary belongs to previous day", 5, at(2024, 6, 10, 3), at(2024, 6, 9, 5)},
		{"at boundary", 5, at(2024, 6, 10, 5), at(2024, 6, 10, 5)},
		{"just before boundary", 5, time.Date(2024, 6, 10, 4, 59, 59, 0, time.UTC), at(2024, 6, 9, 5)},
		{"after boundary", 5, at(2024, 6, 10, 23), at(2024, 6, 10, 5)},
		{"midnight boundary", 0, at(2024, 6, 10, 3), at(2024, 6, 10, 0)},
		{"six o'clock boundary over month", 6, at(2024, 3, 1, 2), at(2024, 2, 29, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := newTestCalculator(t, func(o *Options) { o.DayStartHour = tt.dayStartHour })
			got := calc.DayRange(tt.anchor)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", got.Start, tt.wantStart)
			}
			if want := tt.wantStart.AddDate(0, 0, 1); !got.End.Equal(want) {
				t.Errorf("End = %v, want %v", got.End, want)
			}
			if got.Length != 1 {
				t.Errorf("Length = %d, want 1", got.Length)
			}
		})
	}
}

func TestDayRange_Properties(t *testing.T) {
	for _, hour := range []int{0, 5, 6, 23} {
		calc := newTestCalculator(t, func(o *Options) { o.DayStartHour = hour })
		for _, loc := range locations(t) {
			for _, a := range anchors(loc) {
				r := calc.DayRange(a)
				if r.Length != 1 {
					t.Fatalf("hour=%d DayRange(%v).Length = %d", hour, a, r.Length)
				}
				if !IsInRange(a, r) {
					t.Fatalf("hour=%d DayRange(%v) = %v does not contain anchor", hour, a, r)
				}
				if r.Start.Hour() != hour && !isDSTGap(r.Start, hour) {
					t.Fatalf("hour=%d DayRange(%v).Start = %v not on boundary", hour, a, r.Start)
				}
				if !r.End.Equal(dateutil.AtHour(dateutil.AddDays(r.Start, 1), hour)) {
					t.Fatalf("hour=%d DayRange(%v).End = %v, want next day at %02d:00", hour, a, r.End, hour)
				}
			}
		}
	}
}

// isDSTGap reports whether hour does not exist on t's day and was normalized.
func isDSTGap(t time.Time, hour int) bool {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location()).Hour() != hour
}

func TestDayRange_DSTGap(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// 2024-03-10 02:00 does not exist in New York.
	calc := newTestCalculator(t, func(o *Options) { o.DayStartHour = 2 })
	a := time.Date(2024, 3, 11, 1, 0, 0, 0, ny)
	r := calc.DayRange(a)
	if want := time.Date(2024, 3, 11, 2, 0, 0, 0, ny); !r.End.Equal(want) {
		t.Errorf("DayRange(%v).End = %v, want %v", a, r.End, want)
	}
	if y, m, d := r.Start.Date(); y != 2024 || m != time.March || d != 10 {
		t.Errorf("DayRange(%v).Start = %v, want March 10", a, r.Start)
	}

	for hour := 0; hour < 24; hour++ {
		calc := newTestCalculator(t, func(o *Options) {
			o.WeekStartsOn = time.Sunday
			o.DayStartHour = hour
			o.ShiftWeeks = true
		})
		for a := time.Date(2024, 1, 1, 0, 0, 0, 0, ny); a.Year() == 2024; a = a.Add(15 * time.Minute) {
			day := calc.DayRange(a)
			if !IsInRange(a, day) {
				t.Fatalf("hour=%d DayRange(%v) = %v does not contain anchor", hour, a, day)
			}
			if next := calc.DayRange(day.End); !next.Start.Equal(day.End) {
				t.Fatalf("hour=%d days do not tile: %v then %v", hour, day, next)
			}
			if a.Minute() != 0 {
				continue
			}
			week := calc.WeekRange(a)
			if !IsInRange(a, week) {
				t.Fatalf("hour=%d WeekRange(%v) = %v does not contain anchor", hour, a, week)
			}
			if next := calc.WeekRange(week.End); !next.Start.Equal(week.End) {
				t.Fatalf("hour=%d weeks do not tile: %v then %v", hour, week, next)
			}
		}
	}
}

func TestWeekRange_Properties(t *testing.T) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		for _, shift := range []bool{false, true} {
			calc := newTestCalculator(t, func(o *Options) {
				o.WeekStartsOn = wd
				o.DayStartHour = 5
				o.ShiftWeeks = shift
			})
			for _, loc := range locations(t) {
				for _, a := range anchors(loc) {
					r := calc.WeekRange(a)
					if r.Length != 7 {
						t.Fatalf("WeekRange(%v).Length = %d", a, r.Length)
					}
					if r.Start.Weekday() != wd {
						t.Fatalf("wd=%v WeekRange(%v).Start = %v on %v", wd, a, r.Start, r.Start.Weekday())
					}
					if !IsInRange(a, r) {
						t.Fatalf("wd=%v shift=%t WeekRange(%v) = %v does not contain anchor", wd, shift, a, r)
					}
					if dateutil.DaysBetween(r.Start, r.End) != 7 {
						t.Fatalf("WeekRange(%v).End = %v, want 7 days after Start", a, r.End)
					}
					if next := calc.WeekRange(r.End); !next.Start.Equal(r.End) {
						t.Fatalf("weeks do not tile: %v then %v", r, next)
					}
				}
			}
		}
	}
}

func TestWeekRange_ShiftWeeks(t *testing.T) {
	calc := newTestCalculator(t, func(o *Options) {
		o.WeekStartsOn = time.Saturday
		o.DayStartHour = 5
		o.ShiftWeeks = true
	})

	// Saturday 03:00 still belongs to the previous logical week.
	got := calc.WeekRange(at(2024, 3, 16, 3))
	if want := at(2024, 3, 9, 5); !got.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", got.Start, want)
	}
	if want := at(2024, 3, 16, 5); !got.End.Equal(want) {
		t.Errorf("End = %v, want %v", got.End, want)
	}
}

func TestMonthRange_Properties(t *testing.T) {
	for _, shift := range []bool{false, true} {
		calc := newTestCalculator(t, func(o *Options) {
			o.DayStartHour = 6
			o.ShiftMonths = shift
		})
		for _, loc := range locations(t) {
			for _, a := range anchors(loc) {
				r := calc.MonthRange(a)
				if r.Start.Day() != 1 {
					t.Fatalf("MonthRange(%v).Start = %v, want first of month", a, r.Start)
				}
				if r.Length < 28 || r.Length > 31 {
					t.Fatalf("MonthRange(%v).Length = %d", a, r.Length)
				}
				if !IsInRange(a, r) {
					t.Fatalf("shift=%t MonthRange(%v) = %v does not contain anchor", shift, a, r)
				}
				next := calc.MonthRange(dateutil.AddMonths(r.Start, 1))
				if !r.End.Equal(next.Start) {
					t.Fatalf("months do not tile: %v then %v", r, next)
				}
				if !shift {
					if following := calc.MonthRange(dateutil.AddMonths(a, 1)); !r.End.Equal(following.Start) {
						t.Fatalf("MonthRange(%v).End = %v, MonthRange(+1 month).Start = %v", a, r.End, following.Start)
					}
				}
			}
		}
	}
}

func TestMonthRange_ShiftMonths(t *testing.T) {
	calc := newTestCalculator(t, func(o *Options) {
		o.DayStartHour = 6
		o.ShiftMonths = true
	})

	got := calc.MonthRange(at(2024, 2, 15, 12))
	if want := at(2024, 2, 1, 6); !got.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", got.Start, want)
	}
	if want := at(2024, 3, 1, 6); !got.End.Equal(want) {
		t.Errorf("End = %v, want %v", got.End, want)
	}
	if got.Length != 29 {
		t.Errorf("Length = %d, want 29", got.Length)
	}

	// 1 March 02:00 is still the logical 29 February.
	early := calc.MonthRange(at(2024, 3, 1, 2))
	if !early.Start.Equal(got.Start) {
		t.Errorf("MonthRange(1 March 02:00).Start = %v, want %v", early.Start, got.Start)
	}
}

func TestMonthDisplayRange(t *testing.T) {
	tests := []struct {
		name         string
		anchor       time.Time
		weekStartsOn time.Weekday
		dayStartHour int
		wantStart    time.Time
		wantLength   int
	}{
		{"february 2024 saturday start", at(2024, 2, 15, 0), time.Saturday, 0, at(2024, 1, 27, 0), 35},
		{"march 2024 six weeks", at(2024, 3, 15, 0), time.Saturday, 0, at(2024, 2, 24, 0), 42},
		{"february 2026 four weeks", at(2026, 2, 10, 0), time.Sunday, 0, at(2026, 2, 1, 0), 28},
		{"day start hour carried", at(2024, 2, 15, 0), time.Saturday, 5, at(2024, 1, 27, 5), 35},
		{"monday start", at(2024, 9, 1, 0), time.Monday, 0, at(2024, 8, 26, 0), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := newTestCalculator(t, func(o *Options) {
				o.WeekStartsOn = tt.weekStartsOn
				o.DayStartHour = tt.dayStartHour
			})
			got := calc.MonthDisplayRange(tt.anchor)
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", got.Start, tt.wantStart)
			}
			if got.Length != tt.wantLength {
				t.Errorf("Length = %d, want %d", got.Length, tt.wantLength)
			}
			if want := dateutil.AddDays(tt.wantStart, tt.wantLength-1); !got.End.Equal(want) {
				t.Errorf("End = %v, want %v (inclusive)", got.End, want)
			}
		})
	}
}

func TestMonthDisplayRange_Properties(t *testing.T) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		calc := newTestCalculator(t, func(o *Options) { o.WeekStartsOn = wd })
		for _, loc := range locations(t) {
			for _, a := range anchors(loc) {
				month := calc.MonthRange(a)
				display := calc.MonthDisplayRange(a)
				if display.Length%7 != 0 {
					t.Fatalf("MonthDisplayRange(%v).Length = %d, not whole weeks", a, display.Length)
				}
				if display.Length < month.Length || display.Length < 28 || display.Length > 42 {
					t.Fatalf("MonthDisplayRange(%v).Length = %d, month has %d days", a, display.Length, month.Length)
				}
				if display.Start.Weekday() != wd {
					t.Fatalf("MonthDisplayRange(%v).Start on %v, want %v", a, display.Start.Weekday(), wd)
				}
				if display.Start.After(month.Start) {
					t.Fatalf("display starts after month: %v > %v", display.Start, month.Start)
				}
				if lead := dateutil.DaysBetween(display.Start, month.Start); lead >= 7 {
					t.Fatalf("MonthDisplayRange(%v) has %d leading days", a, lead)
				}
				if trail := dateutil.DaysBetween(month.End, display.End) + 1; trail >= 7 {
					t.Fatalf("MonthDisplayRange(%v) has %d trailing days", a, trail)
				}
			}
		}
	}
}

func TestRange_Dispatch(t *testing.T) {
	calc := newTestCalculator(t, nil)
	anchor := at(2024, 3, 15, 10)
	tests := []struct {
		g    Granularity
		want DateRange
	}{
		{Day, calc.DayRange(anchor)},
		{Week, calc.WeekRange(anchor)},
		{Month, calc.MonthRange(anchor)},
	}
	for _, tt := range tests {
		got := calc.Range(anchor, tt.g)
		if !got.Start.Equal(tt.want.Start) || !got.End.Equal(tt.want.End) || got.Length != tt.want.Length {
			t.Errorf("Range(%v) = %v, want %v", tt.g, got, tt.want)
		}
	}
}

func TestIsInRange_HalfOpen(t *testing.T) {
	calc := newTestCalculator(t, nil)
	for _, r := range []DateRange{
		calc.DayRange(at(2024, 3, 15, 10)),
		calc.WeekRange(at(2024, 3, 15, 10)),
		calc.MonthRange(at(2024, 3, 15, 10)),
	} {
		if !IsInRange(r.Start, r) {
			t.Errorf("IsInRange(start) = false for %v", r)
		}
		if IsInRange(r.End, r) {
			t.Errorf("IsInRange(end) = true for %v", r)
		}
		if !r.Contains(r.End.Add(-time.Nanosecond)) {
			t.Errorf("Contains(end - 1ns) = false for %v", r)
		}
		if r.Contains(r.Start.Add(-time.Nanosecond)) {
			t.Errorf("Contains(start - 1ns) = true for %v", r)
		}
	}
}

func TestNewCalculator_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"week start negative", func(o *Options) { o.WeekStartsOn = -1 }},
		{"week start too large", func(o *Options) { o.WeekStartsOn = 7 }},
		{"day start hour negative", func(o *Options) { o.DayStartHour = -1 }},
		{"day start hour too large", func(o *Options) { o.DayStartHour = 24 }},
		{"month columns", func(o *Options) { o.MonthColumns = 5 }},
		{"display width", func(o *Options) { o.DisplayWidth = 10 }},
		{"empty locale", func(o *Options) { o.Locale = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			calc, err := NewCalculator(opts)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("NewCalculator error = %v, want %v", err, ErrInvalidConfiguration)
			}
			if calc != nil {
				t.Error("NewCalculator returned a calculator alongside an error")
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.WeekStartsOn != time.Saturday {
		t.Errorf("WeekStartsOn = %v, want Saturday", opts.WeekStartsOn)
	}
	if !opts.ShowWeekNumber {
		t.Error("ShowWeekNumber = false, want true")
	}
	if opts.DayStartHour != 0 {
		t.Errorf("DayStartHour = %d, want 0", opts.DayStartHour)
	}
	if opts.MonthColumns != 4 {
		t.Errorf("MonthColumns = %d, want 4", opts.MonthColumns)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestParseGranularity(t *testing.T) {
	for _, g := range Granularities() {
		got, err := ParseGranularity(" " + g.String() + " ")
		if err != nil || got != g {
			t.Errorf("ParseGranularity(%q) = %v, %v", g.String(), got, err)
		}
	}
	if _, err := ParseGranularity("year"); !errors.Is(err, ErrUnknownGranularity) {
		t.Errorf("ParseGranularity(year) error = %v, want %v", err, ErrUnknownGranularity)
	}

	var g Granularity
	if err := g.UnmarshalText([]byte("Week")); err != nil || g != Week {
		t.Errorf("UnmarshalText(Week) = %v, %v", g, err)
	}
	if _, err := Granularity(9).MarshalText(); !errors.Is(err, ErrUnknownGranularity) {
		t.Errorf("MarshalText(9) error = %v", err)
	}
}
