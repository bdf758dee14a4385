package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	StatusText  string
	HelpText    string // may span several lines
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
}

// RenderFooter renders the status line followed by the help lines.
func RenderFooter(model FooterModel) string {
	lines := []string{FitLine(model.InnerW, model.StatusStyle, model.StatusText)}
	for _, line := range strings.Split(model.HelpText, "\n") {
		lines = append(lines, FitLine(model.InnerW, model.HelpStyle, line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
