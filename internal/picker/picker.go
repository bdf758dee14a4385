// Package picker holds the selection state of a date picker and derives
// the active range and render data from it.
package picker

import (
	"fmt"
	"time"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/dateutil"
	"github.com/javiermolinar/datepick/internal/locale"
)

// ChangeFunc receives the selected date and its derived range.
type ChangeFunc func(selected time.Time, r calendar.DateRange)

// NotifyMode controls when ChangeFunc is invoked.
type NotifyMode int

const (
	// NotifyImmediate reports every selection change right after it is committed.
	NotifyImmediate NotifyMode = iota
	// NotifyOnClose reports the latest selection once, when the picker closes.
	NotifyOnClose
)

func (m NotifyMode) String() string {
	switch m {
	case NotifyImmediate:
		return "immediate"
	case NotifyOnClose:
		return "close"
	default:
		return fmt.Sprintf("NotifyMode(%d)", int(m))
	}
}

// ParseNotifyMode parses "immediate" or "close".
func ParseNotifyMode(s string) (NotifyMode, error) {
	switch s {
	case "", "immediate":
		return NotifyImmediate, nil
	case "close", "on-close":
		return NotifyOnClose, nil
	default:
		return NotifyImmediate, fmt.Errorf("%w: notify mode must be immediate or close, got %q", calendar.ErrInvalidConfiguration, s)
	}
}

// Picker is the selection state machine of one date picker. It is not safe
// for concurrent use; callers serialize transitions.
type Picker struct {
	calc  *calendar.Calculator
	namer *locale.Namer

	granularity calendar.Granularity
	anchor      time.Time // selected date, drives the range
	displayed   time.Time // month/year in view

	onChange         ChangeFunc
	mode             NotifyMode
	notifyOnNavigate bool
	static           bool
	open             bool
	dirty            bool // unreported change in NotifyOnClose mode

	monthColumns int
	clock        func() time.Time
	anchorSet    bool
}

// Option configures a Picker.
type Option func(*Picker)

// WithAnchor sets the initial selected date.
func WithAnchor(t time.Time) Option {
	return func(p *Picker) {
		p.anchor = t
		p.anchorSet = true
	}
}

// WithGranularity sets the initial granularity.
func WithGranularity(g calendar.Granularity) Option {
	return func(p *Picker) { p.granularity = g }
}

// WithChangeFunc registers the change callback.
func WithChangeFunc(fn ChangeFunc) Option {
	return func(p *Picker) { p.onChange = fn }
}

// WithNotifyMode selects immediate or on-close notification.
func WithNotifyMode(m NotifyMode) Option {
	return func(p *Picker) { p.mode = m }
}

// WithNotifyOnNavigate makes month/year navigation count as a change to
// report on close. It has no effect in NotifyImmediate mode.
func WithNotifyOnNavigate(enabled bool) Option {
	return func(p *Picker) { p.notifyOnNavigate = enabled }
}

// WithStatic keeps the picker open; Close becomes a no-op.
func WithStatic(static bool) Option {
	return func(p *Picker) { p.static = static }
}

// WithClock overrides time.Now for the default anchor and today markers.
func WithClock(clock func() time.Time) Option {
	return func(p *Picker) { p.clock = clock }
}

// WithMonthColumns overrides the month browser layout from the options.
func WithMonthColumns(n int) Option {
	return func(p *Picker) { p.monthColumns = n }
}

// New creates an open Picker. Without WithAnchor the anchor is the current time.
func New(calc *calendar.Calculator, namer *locale.Namer, opts ...Option) (*Picker, error) {
	if calc == nil || namer == nil {
		return nil, fmt.Errorf("%w: calculator and namer are required", calendar.ErrInvalidConfiguration)
	}
	p := &Picker{
		calc:         calc,
		namer:        namer,
		granularity:  calendar.Day,
		mode:         NotifyImmediate,
		open:         true,
		monthColumns: calc.Options().MonthColumns,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.granularity < calendar.Day || p.granularity > calendar.Month {
		return nil, fmt.Errorf("%w: %v", calendar.ErrUnknownGranularity, p.granularity)
	}
	if p.mode != NotifyImmediate && p.mode != NotifyOnClose {
		return nil, fmt.Errorf("%w: unknown notify mode %d", calendar.ErrInvalidConfiguration, int(p.mode))
	}
	if p.static && p.mode == NotifyOnClose {
		return nil, fmt.Errorf("%w: a static picker never closes, notify mode close would never report", calendar.ErrInvalidConfiguration)
	}
	if p.monthColumns != 3 && p.monthColumns != 4 {
		return nil, fmt.Errorf("%w: month columns must be 3 or 4, got %d", calendar.ErrInvalidConfiguration, p.monthColumns)
	}
	if !p.anchorSet {
		p.anchor = p.clock()
	}
	p.displayed = p.anchor
	return p, nil
}

// Anchor returns the selected date.
func (p *Picker) Anchor() time.Time { return p.anchor }

// Displayed returns the date whose month is in view.
func (p *Picker) Displayed() time.Time { return p.displayed }

// Granularity returns the current granularity.
func (p *Picker) Granularity() calendar.Granularity { return p.granularity }

// NotifyMode returns the configured notification mode.
func (p *Picker) NotifyMode() NotifyMode { return p.mode }

// Options returns the calendar options in use.
func (p *Picker) Options() calendar.Options { return p.calc.Options() }

// Range returns the selection range derived from the anchor.
func (p *Picker) Range() calendar.DateRange {
	return p.calc.Range(p.anchor, p.granularity)
}

// IsOpen reports whether the picker is open.
func (p *Picker) IsOpen() bool { return p.open }

// IsStatic reports whether the picker ignores Close.
func (p *Picker) IsStatic() bool { return p.static }

// SelectDate selects d and brings its month into view.
func (p *Picker) SelectDate(d time.Time) {
	p.anchor = d
	p.displayed = d
	p.changed()
}

// SelectMonth handles a click on the month browser. In month granularity it
// selects month m of the displayed year, keeping the anchor's day (clamped)
// and leaving the view where it is. Otherwise it only browses to that month.
func (p *Picker) SelectMonth(m time.Month) {
	if p.granularity == calendar.Month {
		p.anchor = dateutil.SetMonth(p.anchor, p.displayed.Year(), m)
		p.changed()
		return
	}
	p.displayed = dateutil.SetMonth(p.displayed, p.displayed.Year(), m)
	p.navigated()
}

// NavigateMonth moves the view by n months. The anchor is unchanged.
func (p *Picker) NavigateMonth(n int) {
	if n == 0 {
		return
	}
	p.displayed = dateutil.AddMonths(p.displayed, n)
	p.navigated()
}

// NavigateYear moves the view by n years. The anchor is unchanged.
func (p *Picker) NavigateYear(n int) {
	if n == 0 {
		return
	}
	p.displayed = dateutil.AddYears(p.displayed, n)
	p.navigated()
}

// SetGranularity switches the granularity. The anchor is unchanged; the
// derived range is reported when it differs from the previous one.
func (p *Picker) SetGranularity(g calendar.Granularity) error {
	if g < calendar.Day || g > calendar.Month {
		return fmt.Errorf("%w: %v", calendar.ErrUnknownGranularity, g)
	}
	if g == p.granularity {
		return nil
	}
	before := p.Range()
	p.granularity = g
	after := p.Range()
	if !before.Start.Equal(after.Start) || !before.End.Equal(after.End) {
		p.changed()
	}
	return nil
}

// Open marks the picker open.
func (p *Picker) Open() {
	p.open = true
}

// Close closes the picker and, in NotifyOnClose mode, reports the pending
// selection. It returns false for static pickers, which stay open.
func (p *Picker) Close() bool {
	if p.static {
		return false
	}
	p.open = false
	if p.mode == NotifyOnClose && p.dirty {
		p.dirty = false
		p.notify()
	}
	return true
}

func (p *Picker) changed() {
	if p.mode == NotifyOnClose {
		p.dirty = true
		return
	}
	p.notify()
}

func (p *Picker) navigated() {
	if p.mode == NotifyOnClose && p.notifyOnNavigate {
		p.dirty = true
	}
}

func (p *Picker) notify() {
	if p.onChange != nil {
		p.onChange(p.anchor, p.Range())
	}
}
