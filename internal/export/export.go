// Package export encodes a picker selection for other tools.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/datepick/internal/calendar"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("format must be one of text, json, yaml, ics")

// Format is an output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	ICS  Format = "ics"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{Text, JSON, YAML, ICS}
}

// ParseFormat parses a format name case-insensitively. Empty means Text.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return Text, nil
	}
	for _, f := range Formats() {
		if f == name {
			return f, nil
		}
	}
	return Text, fmt.Errorf("%w: got %q", ErrUnknownFormat, s)
}

// Timestamp layout used by the text, JSON and YAML encodings.
const timestampLayout = "2006-01-02T15:04:05Z07:00"

// productID identifies datepick in iCalendar output.
const productID = "-//datepick//datepick//EN"

// Selection is what gets exported.
type Selection struct {
	Anchor      time.Time
	Granularity calendar.Granularity
	Range       calendar.DateRange
}

// Record is the flat form used by the JSON and YAML encodings.
type Record struct {
	Granularity string `json:"granularity" yaml:"granularity"`
	Anchor      string `json:"anchor" yaml:"anchor"`
	Start       string `json:"start" yaml:"start"`
	End         string `json:"end" yaml:"end"`
	Days        int    `json:"days" yaml:"days"`
}

// NewRecord flattens a selection.
func NewRecord(sel Selection) Record {
	return Record{
		Granularity: sel.Granularity.String(),
		Anchor:      sel.Anchor.Format(timestampLayout),
		Start:       sel.Range.Start.Format(timestampLayout),
		End:         sel.Range.End.Format(timestampLayout),
		Days:        sel.Range.Length,
	}
}

// Write encodes sel to w in format f.
func Write(w io.Writer, f Format, sel Selection) error {
	switch f {
	case Text:
		_, err := fmt.Fprintln(w, FormatText(sel))
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewRecord(sel)); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewRecord(sel)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case ICS:
		_, err := io.WriteString(w, Calendar(sel, time.Now()).Serialize())
		return err
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownFormat, string(f))
	}
}

// FormatText renders a one-line summary, e.g.
// "week 2024-03-09 00:00 - 2024-03-16 00:00 (7 days)".
func FormatText(sel Selection) string {
	return fmt.Sprintf("%s %s", sel.Granularity, sel.Range)
}

// Calendar builds a single-event iCalendar document spanning the range.
func Calendar(sel Selection, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	event := cal.AddEvent(eventID(sel))
	event.SetDtStampTime(stamp)
	event.SetStartAt(sel.Range.Start)
	event.SetEndAt(sel.Range.End)
	event.SetSummary(summary(sel))
	return cal
}

func eventID(sel Selection) string {
	return fmt.Sprintf("%s-%s@datepick", sel.Granularity, sel.Range.Start.UTC().Format("20060102T150405Z"))
}

func summary(sel Selection) string {
	switch sel.Granularity {
	case calendar.Week:
		return "Week of " + sel.Range.Start.Format("2006-01-02")
	case calendar.Month:
		return sel.Range.Start.Format("January 2006")
	default:
		return sel.Range.Start.Format("Monday, January 2, 2006")
	}
}
