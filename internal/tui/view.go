package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/datepick/internal/calendar"
	"github.com/javiermolinar/datepick/internal/dateutil"
	"github.com/javiermolinar/datepick/internal/export"
	"github.com/javiermolinar/datepick/internal/picker"
	"github.com/javiermolinar/datepick/internal/tui/view"
)

// Layout constants.
const (
	appFrameWidth = 4 // rounded border plus horizontal padding
	minAppHeight  = 10
)

// View renders the picker centered in the terminal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		MinWidth:         calendar.MinDisplayWidth,
		MinHeight:        minAppHeight,
		Content:          m.renderApp(),
		Bg:               m.styles.colorBg,
		EmptyPlaceholder: "Loading...",
	})
}

// appWidth is the configured display width, shrunk to the terminal.
func (m Model) appWidth() int {
	if m.width > 0 && m.width < m.opts.DisplayWidth {
		return m.width
	}
	return m.opts.DisplayWidth
}

func (m Model) innerWidth() int {
	return max(1, m.appWidth()-appFrameWidth)
}

func (m Model) renderApp() string {
	innerW := m.innerWidth()
	if !m.picker.IsOpen() {
		summary := "Selected " + export.FormatText(m.selection()) + "  (o: open, q: quit)"
		return m.styles.AppStyle.Render(view.FitLine(innerW, m.styles.StatusStyle, summary))
	}

	snap := m.picker.Snapshot(m.picker.Now())
	sections := []string{m.renderHeader(snap, innerW)}
	if snap.ShowDays {
		sections = append(sections, m.center(innerW, view.RenderTable(m.dayTableState(snap))))
	}
	sections = append(sections,
		m.center(innerW, m.styles.YearStyle.Render(strconv.Itoa(snap.Year))),
		m.center(innerW, view.RenderTable(m.monthTableState(snap))),
		view.RenderFooter(view.FooterModel{
			InnerW:      innerW,
			StatusText:  m.statusText(snap),
			HelpText:    m.help.View(m.keys),
			StatusStyle: m.statusStyle(),
			HelpStyle:   m.styles.HelpStyle,
		}),
	)
	return m.styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) center(width int, content string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(m.styles.colorBg))
}

func (m Model) renderHeader(snap picker.Snapshot, innerW int) string {
	tabs := make([]string, 0, 3)
	for _, g := range calendar.Granularities() {
		tabs = append(tabs, g.String())
	}
	return view.RenderHeader(view.HeaderViewState{
		InnerW:      innerW,
		Title:       snap.Title,
		Tabs:        tabs,
		ActiveTab:   int(snap.Granularity),
		TitleStyle:  m.styles.TitleStyle,
		TabStyle:    m.styles.TabStyle,
		ActiveStyle: m.styles.TabActiveStyle,
		Bg:          m.styles.colorBg,
	})
}

func (m Model) dayTableState(snap picker.Snapshot) view.TableViewState {
	c := m.styleCache
	var headers []string
	var headerStyles []lipgloss.Style
	if snap.ShowWeekNumber {
		headers = append(headers, "#")
		headerStyles = append(headerStyles, c.WeekNumber)
	}
	for _, name := range snap.WeekdayNames {
		headers = append(headers, ansi.Truncate(name, dayCellWidth-1, ""))
		headerStyles = append(headerStyles, c.WeekdayHeader)
	}

	rows := make([][]string, len(snap.Weeks))
	styles := make([][]lipgloss.Style, len(snap.Weeks))
	for i, week := range snap.Weeks {
		if snap.ShowWeekNumber {
			rows[i] = append(rows[i], strconv.Itoa(week.Number))
			styles[i] = append(styles[i], c.WeekNumber)
		}
		for _, cell := range week.Cells {
			rows[i] = append(rows[i], strconv.Itoa(cell.Date.Day()))
			cursor := m.focus == focusDays && dateutil.SameDay(cell.Date, m.cursor)
			styles[i] = append(styles[i], m.dayStyle(cell, cursor))
		}
	}

	return view.TableViewState{
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content:      view.TableContent{Rows: rows, CellStyles: styles},
		BorderStyle:  m.styles.BorderStyle,
		Render:       true,
	}
}

// dayStyle resolves the style of one day cell.
func (m Model) dayStyle(cell calendar.Cell, cursor bool) lipgloss.Style {
	c := m.styleCache
	if cursor {
		return c.Cursor
	}
	style := c.Day
	switch {
	case cell.Selected && cell.OutOfMonth:
		style = c.SelectedOut
	case cell.Selected:
		style = c.Selected
	case cell.OutOfMonth:
		style = c.OutOfMonth
	}
	if cell.Today {
		style = m.styles.TodayStyle(style, cell.Selected)
	}
	return style
}

func (m Model) monthTableState(snap picker.Snapshot) view.TableViewState {
	c := m.styleCache
	width := m.monthCellWidth()
	rows := make([][]string, len(snap.Months))
	styles := make([][]lipgloss.Style, len(snap.Months))
	for i, row := range snap.Months {
		for _, cell := range row {
			rows[i] = append(rows[i], ansi.Truncate(cell.Name, width-1, "…"))
			style := c.Month
			switch {
			case m.focus == focusMonths && cell.Month == m.monthCursor:
				style = c.MonthCursor
			case cell.Selected:
				style = c.MonthSelected
			}
			styles[i] = append(styles[i], style)
		}
	}
	return view.TableViewState{
		Content:     view.TableContent{Rows: rows, CellStyles: styles},
		BorderStyle: m.styles.BorderStyle,
		Render:      true,
	}
}

// statusText shows a pending message, else the current range and how many
// notifications were delivered.
func (m Model) statusText(snap picker.Snapshot) string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	var b strings.Builder
	b.WriteString(snap.Granularity.String())
	b.WriteString(" ")
	b.WriteString(snap.Range.String())
	if m.notices.count > 0 {
		b.WriteString("  notified ")
		b.WriteString(strconv.Itoa(m.notices.count))
		b.WriteString("x")
	} else if m.picker.NotifyMode() == picker.NotifyOnClose {
		b.WriteString("  reported on close")
	}
	return b.String()
}

func (m Model) statusStyle() lipgloss.Style {
	if m.statusWarn {
		return m.styles.WarningStyle
	}
	return m.styles.StatusStyle
}
