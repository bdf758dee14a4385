package locale

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/goodsign/monday"
)

func newNamer(t *testing.T, tag string) *Namer {
	t.Helper()
	n, err := New(tag)
	if err != nil {
		t.Fatalf("New(%q): %v", tag, err)
	}
	return n
}

func TestWeekdayNames_English(t *testing.T) {
	n := newNamer(t, "en-US")

	tests := []struct {
		weekStartsOn time.Weekday
		want         []string
	}{
		{time.Sunday, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}},
		{time.Monday, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}},
		{time.Saturday, []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}},
	}

	for _, tt := range tests {
		t.Run(tt.weekStartsOn.String(), func(t *testing.T) {
			got := n.WeekdayNames(tt.weekStartsOn)
			if !slices.Equal(got, tt.want) {
				t.Errorf("WeekdayNames(%v) = %v, want %v", tt.weekStartsOn, got, tt.want)
			}
		})
	}
}

func TestWeekdayNames_RotationIndependentOfLocale(t *testing.T) {
	// fr-FR weeks start on Monday, the rotation must still follow weekStartsOn.
	n := newNamer(t, "fr_FR")
	saturday := time.Date(2024, time.January, 6, 12, 0, 0, 0, time.UTC)

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		got := n.WeekdayNames(wd)
		if len(got) != 7 {
			t.Fatalf("WeekdayNames(%v) has %d entries", wd, len(got))
		}
		first := monday.Format(saturday.AddDate(0, 0, int(wd)+1), "Mon", monday.LocaleFrFR)
		if got[0] != first {
			t.Errorf("WeekdayNames(%v)[0] = %q, want %q", wd, got[0], first)
		}
	}

	if got := n.WeekdayNames(time.Saturday)[0]; got == "Sat" {
		t.Errorf("French Saturday rendered in English: %q", got)
	}
}

func TestWeekdayNames_ReturnsCopy(t *testing.T) {
	n := newNamer(t, "en-US")
	names := n.WeekdayNames(time.Saturday)
	names[0] = "mutated"
	if got := n.WeekdayNames(time.Saturday)[0]; got != "Sat" {
		t.Errorf("cache mutated through returned slice: %q", got)
	}
}

func TestMonthNames(t *testing.T) {
	en := newNamer(t, "en-US").MonthNames()
	want := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	if !slices.Equal(en, want) {
		t.Errorf("MonthNames(en-US) = %v, want %v", en, want)
	}

	fr := newNamer(t, "fr-FR").MonthNames()
	if len(fr) != 12 {
		t.Fatalf("MonthNames(fr-FR) has %d entries", len(fr))
	}
	if fr[0] != "janvier" {
		t.Errorf("MonthNames(fr-FR)[0] = %q, want janvier", fr[0])
	}
}

func TestMonthTitle(t *testing.T) {
	n := newNamer(t, "en")
	got := n.MonthTitle(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	if got != "March 2024" {
		t.Errorf("MonthTitle = %q, want %q", got, "March 2024")
	}
}

func TestNew_Matching(t *testing.T) {
	tests := []struct {
		tag     string
		wantTag string
	}{
		{"en-US", "en-US"},
		{"en_US", "en-US"},
		{"fr-FR", "fr-FR"},
	}
	for _, tt := range tests {
		if got := newNamer(t, tt.tag).Tag(); got != tt.wantTag {
			t.Errorf("New(%q).Tag() = %q, want %q", tt.tag, got, tt.wantTag)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	for _, tag := range []string{"", "not a tag!", "tlh"} {
		t.Run(tag, func(t *testing.T) {
			_, err := New(tag)
			if !errors.Is(err, ErrUnsupportedLocale) {
				t.Errorf("New(%q) error = %v, want %v", tag, err, ErrUnsupportedLocale)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	tags := Supported()
	if len(tags) == 0 || tags[0] != "en-US" {
		t.Errorf("Supported() = %v, want en-US first", tags)
	}
}
