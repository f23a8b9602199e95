package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BoxWidth is the inner width of every framed block.
const BoxWidth = 61

// Box frames lines in a single-line border drawn in the theme accent. Each
// line is indented two cells from the left edge.
func Box(theme Theme, lines []string, width int) string {
	if width <= 0 {
		width = BoxWidth
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Hex)).
		PaddingLeft(2).
		Width(width)
	return style.Render(strings.Join(lines, "\n"))
}

// HeaderLine spreads left and right across width, keeping at least one space
// between them.
func HeaderLine(left, right string, width int) string {
	if right == "" {
		return left
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
