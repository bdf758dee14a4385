package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderViewState holds the title line of the picker.
type HeaderViewState struct {
	InnerW      int
	Title       string
	Tabs        []string // granularity names
	ActiveTab   int
	TitleStyle  lipgloss.Style
	TabStyle    lipgloss.Style
	ActiveStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderHeader renders the displayed month on the left and the granularity
// tabs on the right.
func RenderHeader(state HeaderViewState) string {
	tabs := make([]string, len(state.Tabs))
	for i, name := range state.Tabs {
		style := state.TabStyle
		if i == state.ActiveTab {
			style = state.ActiveStyle
		}
		tabs[i] = style.Render(" " + name + " ")
	}
	right := strings.Join(tabs, "")
	left := state.TitleStyle.Render(state.Title)

	gap := state.InnerW - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return PadLinesWithBackground(left, state.InnerW, 1, state.Bg)
	}
	filler := lipgloss.NewStyle().Background(state.Bg).Render(strings.Repeat(" ", gap))
	return left + filler + right
}
