package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/config"
	"github.com/javiermolinar/datepick/internal/export"
	"github.com/javiermolinar/datepick/internal/locale"
	"github.com/javiermolinar/datepick/internal/picker"
	"github.com/javiermolinar/datepick/internal/tui/theme"
)

// focus is the grid that receives cursor keys.
type focus int

const (
	focusDays focus = iota
	focusMonths
)

// notices records change notifications. It is shared by pointer so that
// copies of the Model observe callbacks fired by the picker.
type notices struct {
	count int
}

// Result is the picker state when the program exits.
type Result struct {
	Selection export.Selection
	Notified  int // number of change notifications delivered
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	calc   *calendar.Calculator
	picker *picker.Picker
	opts   calendar.Options

	// Theme and styles
	theme      *theme.Theme
	styles     *Styles
	styleCache StyleCache

	// State
	focus       focus
	cursor      time.Time  // day under the cursor, at the day start hour
	monthCursor time.Month // month under the cursor in the month browser
	notices     *notices
	quitting    bool

	// Components
	keys keyMap
	help help.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg   string
	statusWarn  bool
	statusSeq   int
	statusDelay time.Duration

	now    func() time.Time
	copyFn func(string) error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock overrides time.Now for today markers.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// WithClipboard overrides the system clipboard writer.
func WithClipboard(fn func(string) error) ModelOption {
	return func(m *Model) { m.copyFn = fn }
}

// New creates a new TUI model around a picker built from cfg. onChange, if
// not nil, receives every change notification after the TUI records it.
func New(cfg *config.Config, onChange picker.ChangeFunc, pickerOpts []picker.Option, opts ...ModelOption) (*Model, error) {
	calOpts, err := cfg.CalendarOptions()
	if err != nil {
		return nil, err
	}
	calc, err := calendar.NewCalculator(calOpts)
	if err != nil {
		return nil, err
	}
	namer, err := locale.New(calOpts.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", calendar.ErrInvalidConfiguration, err)
	}
	fromConfig, err := cfg.PickerOptions()
	if err != nil {
		return nil, err
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	m := &Model{
		calc:        calc,
		opts:        calOpts,
		theme:       t,
		styles:      styles,
		notices:     &notices{},
		keys:        newKeyMap(),
		help:        help.New(),
		statusDelay: 3 * time.Second,
		now:         time.Now,
		copyFn:      clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(m)
	}

	recorder := func(selected time.Time, r calendar.DateRange) {
		m.notices.count++
		LogNotify(selected, r)
		if onChange != nil {
			onChange(selected, r)
		}
	}

	all := append(fromConfig, picker.WithClock(m.now))
	all = append(all, pickerOpts...)
	all = append(all, picker.WithChangeFunc(recorder))
	p, err := picker.New(calc, namer, all...)
	if err != nil {
		return nil, err
	}
	m.picker = p

	m.help.Styles.ShortKey = styles.HelpStyle.Bold(true)
	m.help.Styles.ShortDesc = styles.HelpStyle
	m.help.Styles.ShortSeparator = styles.HelpStyle
	m.help.Styles.FullKey = styles.HelpStyle.Bold(true)
	m.help.Styles.FullDesc = styles.HelpStyle
	m.help.Styles.FullSeparator = styles.HelpStyle
	m.help.Styles.Ellipsis = styles.HelpStyle

	m.styleCache = NewStyleCache(styles, m.monthCellWidth())
	m.syncCursor()
	if p.Granularity() == calendar.Month {
		m.focus = focusMonths
	}
	return m, nil
}

// Picker returns the underlying selection state machine.
func (m Model) Picker() *picker.Picker {
	return m.picker
}

// Result returns the current selection and notification count.
func (m Model) Result() Result {
	return Result{Selection: m.selection(), Notified: m.notices.count}
}

func (m Model) selection() export.Selection {
	return export.Selection{
		Anchor:      m.picker.Anchor(),
		Granularity: m.picker.Granularity(),
		Range:       m.picker.Range(),
	}
}

// syncCursor puts both cursors on the anchor when it is in view, otherwise
// on the same day of the displayed month.
func (m *Model) syncCursor() {
	anchorDay := m.calc.DayRange(m.picker.Anchor()).Start
	displayed := m.picker.Displayed()
	if monthsBetween(displayed, anchorDay) == 0 {
		m.cursor = anchorDay
	} else {
		m.cursor = m.calc.DayRange(displayed).Start
		if monthsBetween(displayed, m.cursor) != 0 {
			// The logical day of the first hours of a month can fall in the previous one.
			m.cursor = m.calc.DayRange(displayed.AddDate(0, 0, 1)).Start
		}
	}
	m.monthCursor = m.cursor.Month()
}

// monthCellWidth spreads the month browser over the configured width.
func (m Model) monthCellWidth() int {
	inner := m.opts.DisplayWidth - appFrameWidth
	return max(1, (inner-2)/m.opts.MonthColumns)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI and returns the final selection.
func Run(cfg *config.Config, debug bool, onChange picker.ChangeFunc, pickerOpts ...picker.Option) (Result, error) {
	if err := InitDebugLogger(debug); err != nil {
		return Result{}, err
	}
	defer CloseDebugLogger()

	model, err := New(cfg, onChange, pickerOpts)
	if err != nil {
		return Result{}, err
	}

	p := tea.NewProgram(*model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.Result(), nil
	}
	return model.Result(), nil
}
