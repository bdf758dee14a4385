package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Selected range: reversed so it shows on any palette
	colorSelected = color.New(color.ReverseVideo)

	// Selected days of the neighbouring months
	colorSelectedOut = color.New(color.ReverseVideo, color.Faint)

	// Today: bold yellow
	colorToday = color.New(color.FgYellow, color.Bold)

	// Week numbers: cyan
	colorWeekNumber = color.New(color.FgCyan)

	// Muted: days outside the displayed month
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// defaultTermWidth is used when stdout is not a terminal.
const defaultTermWidth = 80

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
