package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/dateutil"
	"github.com/javiermolinar/datepick/internal/export"
)

// keyMap lists every binding of the picker.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Day       key.Binding
	Week      key.Binding
	Month     key.Binding
	Focus     key.Binding
	Today     key.Binding
	Copy      key.Binding
	Open      key.Binding
	Close     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "right")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
		NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
		Day:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		Week:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
		Month:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "days/months")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy range")),
		Open:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.PrevMonth, k.NextMonth, k.Day, k.Week, k.Month, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear, k.Today},
		{k.Day, k.Week, k.Month, k.Focus},
		{k.Copy, k.Close, k.Open, k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	if !m.picker.IsOpen() {
		return m.handleClosedKeys(msg)
	}
	if m.focus == focusMonths {
		return m.handleMonthKeys(msg)
	}
	return m.handleDayKeys(msg)
}

// handleClosedKeys handles keys while the picker is closed.
func (m Model) handleClosedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Select):
		m.picker.Open()
		LogPicker("OPEN", m.picker)
		m.syncCursor()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyRange()
	}
	return m, nil
}

// handleDayKeys handles keys while the day grid has focus.
func (m Model) handleDayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-calendar.DaysInWeek)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(calendar.DaysInWeek)
	case key.Matches(msg, m.keys.Select):
		m.picker.SelectDate(m.cursor)
		LogPicker("SELECT", m.picker)
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusMonths
		m.monthCursor = m.picker.Displayed().Month()
	default:
		return m.handleCommonKeys(msg)
	}
	return m, nil
}

// handleMonthKeys handles keys while the month browser has focus.
func (m Model) handleMonthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.opts.MonthColumns
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveMonthCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveMonthCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveMonthCursor(-columns)
	case key.Matches(msg, m.keys.Down):
		m.moveMonthCursor(columns)
	case key.Matches(msg, m.keys.Select):
		m.picker.SelectMonth(m.monthCursor)
		if m.picker.Granularity() == calendar.Month {
			LogPicker("SELECT", m.picker)
		} else {
			LogPicker("NAVIGATE", m.picker)
			m.focus = focusDays
			m.syncCursor()
		}
	case key.Matches(msg, m.keys.Focus):
		if m.picker.Granularity() != calendar.Month {
			m.focus = focusDays
			m.syncCursor()
		}
	default:
		return m.handleCommonKeys(msg)
	}
	return m, nil
}

// handleCommonKeys handles keys shared by both grids.
func (m Model) handleCommonKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevMonth):
		m.navigateMonths(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.navigateMonths(1)
	case key.Matches(msg, m.keys.PrevYear):
		m.navigateMonths(-12)
	case key.Matches(msg, m.keys.NextYear):
		m.navigateMonths(12)
	case key.Matches(msg, m.keys.Day):
		return m.setGranularity(calendar.Day)
	case key.Matches(msg, m.keys.Week):
		return m.setGranularity(calendar.Week)
	case key.Matches(msg, m.keys.Month):
		return m.setGranularity(calendar.Month)
	case key.Matches(msg, m.keys.Today):
		m.cursor = m.calc.DayRange(m.picker.Now()).Start
		m.monthCursor = m.cursor.Month()
		m.followCursor()
	case key.Matches(msg, m.keys.Copy):
		return m.copyRange()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Close):
		return m.closePicker()
	}
	return m, nil
}

// moveCursor moves the day cursor by n days, following it with the view.
func (m *Model) moveCursor(n int) {
	m.cursor = dateutil.AddDays(m.cursor, n)
	m.followCursor()
}

// followCursor brings the cursor's month into view.
func (m *Model) followCursor() {
	if diff := monthsBetween(m.picker.Displayed(), m.cursor); diff != 0 {
		m.picker.NavigateMonth(diff)
		LogPicker("NAVIGATE", m.picker)
	}
}

// moveMonthCursor moves the month cursor, wrapping into the previous or
// next year.
func (m *Model) moveMonthCursor(n int) {
	idx := int(m.monthCursor-time.January) + n
	switch {
	case idx < 0:
		idx += calendar.MonthsInYear
		m.picker.NavigateYear(-1)
		LogPicker("NAVIGATE", m.picker)
	case idx >= calendar.MonthsInYear:
		idx -= calendar.MonthsInYear
		m.picker.NavigateYear(1)
		LogPicker("NAVIGATE", m.picker)
	}
	m.monthCursor = time.January + time.Month(idx)
}

// navigateMonths moves the view by n months and keeps the day cursor on the
// same day of the new month.
func (m *Model) navigateMonths(n int) {
	if n%12 == 0 {
		m.picker.NavigateYear(n / 12)
	} else {
		m.picker.NavigateMonth(n)
	}
	LogPicker("NAVIGATE", m.picker)
	m.cursor = dateutil.AddMonths(m.cursor, n)
	m.monthCursor = m.picker.Displayed().Month()
}

func (m Model) setGranularity(g calendar.Granularity) (tea.Model, tea.Cmd) {
	if err := m.picker.SetGranularity(g); err != nil {
		LogError("set granularity", err)
		cmd := m.setStatus(err.Error(), true)
		return m, cmd
	}
	LogPicker("GRANULARITY", m.picker)
	if g == calendar.Month {
		m.focus = focusMonths
		m.monthCursor = m.picker.Anchor().Month()
	} else {
		m.focus = focusDays
		m.syncCursor()
	}
	return m, nil
}

func (m Model) copyRange() (tea.Model, tea.Cmd) {
	text := export.FormatText(m.selection())
	if err := m.copyFn(text); err != nil {
		LogError("copy range", err)
		cmd := m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		return m, cmd
	}
	cmd := m.setStatus("Copied "+text, false)
	return m, cmd
}

func (m Model) closePicker() (tea.Model, tea.Cmd) {
	if m.picker.IsStatic() {
		cmd := m.setStatus("This picker is static and stays open", false)
		return m, cmd
	}
	m.picker.Close()
	LogPicker("CLOSE", m.picker)
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.picker.IsOpen() && !m.picker.IsStatic() {
		m.picker.Close()
		LogPicker("CLOSE", m.picker)
	}
	m.quitting = true
	return m, tea.Quit
}

// monthsBetween returns the number of calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
