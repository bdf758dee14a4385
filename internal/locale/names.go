// Package locale produces localized weekday and month names for the picker.
package locale

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// ErrUnsupportedLocale is returned when a tag matches no known locale.
var ErrUnsupportedLocale = errors.New("unsupported locale")

const (
	daysInWeek   = 7
	monthsInYear = 12
	// referenceYear is used to format month names.
	referenceYear = 2024
)

// referenceSunday starts the week used to format weekday names.
var referenceSunday = time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC)

var (
	supportedLocales []monday.Locale
	supportedTags    []language.Tag
	matcher          language.Matcher
)

func init() {
	supportedLocales = monday.ListLocales()
	// en_US goes first so it is the matcher's fallback.
	slices.SortFunc(supportedLocales, func(a, b monday.Locale) int {
		switch {
		case a == monday.LocaleEnUS:
			return -1
		case b == monday.LocaleEnUS:
			return 1
		default:
			return strings.Compare(string(a), string(b))
		}
	})
	supportedTags = make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		supportedTags[i] = language.Make(toBCP47(string(l)))
	}
	matcher = language.NewMatcher(supportedTags)
}

func toBCP47(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
}

// Supported returns the BCP 47 tags of every supported locale.
func Supported() []string {
	out := make([]string, len(supportedTags))
	for i, t := range supportedTags {
		out[i] = t.String()
	}
	return out
}

// Namer formats weekday and month names for one locale.
// It caches results and is not safe for concurrent use.
type Namer struct {
	tag      language.Tag
	locale   monday.Locale
	weekdays map[time.Weekday][]string
	months   []string
}

// New returns a Namer for a BCP 47 tag such as "fr-FR" ("fr_FR" is accepted).
func New(tag string) (*Namer, error) {
	parsed, err := language.Parse(toBCP47(tag))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, tag, err)
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, tag)
	}
	return &Namer{
		tag:      supportedTags[index],
		locale:   supportedLocales[index],
		weekdays: make(map[time.Weekday][]string),
	}, nil
}

// Tag returns the matched locale tag.
func (n *Namer) Tag() string {
	return n.tag.String()
}

// WeekdayNames returns seven abbreviated weekday names in display order:
// name[i] is the weekday (weekStartsOn + i) mod 7. The rotation ignores the
// locale's own first day of the week.
func (n *Namer) WeekdayNames(weekStartsOn time.Weekday) []string {
	if cached, ok := n.weekdays[weekStartsOn]; ok {
		return slices.Clone(cached)
	}
	names := make([]string, daysInWeek)
	for i := range names {
		day := (int(weekStartsOn) + i) % daysInWeek
		names[i] = monday.Format(referenceSunday.AddDate(0, 0, day), "Mon", n.locale)
	}
	n.weekdays[weekStartsOn] = names
	return slices.Clone(names)
}

// MonthNames returns the twelve full month names, January first.
func (n *Namer) MonthNames() []string {
	if n.months == nil {
		n.months = make([]string, monthsInYear)
		for i := range n.months {
			date := time.Date(referenceYear, time.Month(i+1), 1, 12, 0, 0, 0, time.UTC)
			n.months[i] = monday.Format(date, "January", n.locale)
		}
	}
	return slices.Clone(n.months)
}

// MonthTitle returns the header of the displayed month, e.g. "March 2024".
func (n *Namer) MonthTitle(t time.Time) string {
	return fmt.Sprintf("%s %d", n.MonthNames()[t.Month()-1], t.Year())
}
