package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearStatusMsg is sent to clear the status message.
type clearStatusMsg struct {
	seq int
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.innerWidth()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
			m.statusWarn = false
		}
		return m, nil
	}

	return m, nil
}

// setStatus shows a temporary message in the status line.
func (m *Model) setStatus(text string, warn bool) tea.Cmd {
	m.statusMsg = text
	m.statusWarn = warn
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(m.statusDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
