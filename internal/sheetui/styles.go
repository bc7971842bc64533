// internal/sheetui/styles.go
package sheetui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the four sheet regions.
type Styles struct {
	Background lipgloss.Style
	Remaining  lipgloss.Style
	Handle     lipgloss.Style
	Sheet      lipgloss.Style
}

// DefaultStyles returns muted defaults that work on dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Background: lipgloss.NewStyle(),
		Remaining:  lipgloss.NewStyle(),
		Handle: lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("245")).
			Align(lipgloss.Center),
		Sheet: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")),
	}
}

// defaultHandleContent draws a centered grab bar.
func defaultHandleContent(width, _ int) string {
	barWidth := width / 4
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 24 {
		barWidth = 24
	}
	if barWidth > width {
		barWidth = width
	}
	return strings.Repeat("━", barWidth)
}
