// internal/sheetui/compose.go
package sheetui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay places view on top of base with its top-left corner at (x, y).
// It is ANSI-aware: styled overlay content replaces the base cells it covers,
// rows and columns outside the base are clipped, and untouched base rows keep
// their styling intact.
func overlay(base, view string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(view, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		lineWidth := ansi.StringWidth(line)
		startCol := x
		endCol := x + lineWidth
		if lineWidth == 0 || endCol <= 0 || startCol >= width {
			continue
		}

		// Clip the overlay line to the visible column range.
		if startCol < 0 {
			line = ansi.Cut(line, -startCol, lineWidth)
			startCol = 0
		}
		if endCol > width {
			line = ansi.Cut(line, 0, width-startCol)
			endCol = width
		}

		baseLine := baseLines[row]
		if bw := ansi.StringWidth(baseLine); bw < width {
			baseLine += strings.Repeat(" ", width-bw)
		}

		prefix := ansi.Cut(baseLine, 0, startCol)
		// Cutting through a wide character can come up short; pad to keep
		// the overlay aligned.
		if pw := ansi.StringWidth(prefix); pw < startCol {
			prefix += strings.Repeat(" ", startCol-pw)
		}

		result := prefix + line
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[row] = result
	}

	return strings.Join(baseLines, "\n")
}
