// Package view provides view composition helpers for the TUI.
package view

import "github.com/charmbracelet/lipgloss"

// ViewState contains the pre-rendered picker and the terminal size.
type ViewState struct {
	Width            int
	Height           int
	MinWidth         int
	MinHeight        int
	Content          string
	Bg               lipgloss.Color
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}
	if state.Width < state.MinWidth || state.Height < state.MinHeight {
		return PlaceBox(state.Width, state.Height, lipgloss.Center, "Terminal too small", state.Bg)
	}
	return PlaceBox(state.Width, state.Height, lipgloss.Center, state.Content, state.Bg)
}
