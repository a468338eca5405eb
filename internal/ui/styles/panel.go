package styles

import "github.com/charmbracelet/lipgloss"

// Panel returns a rounded-border panel of the given outer width.
// The border takes the accent color when focused.
func Panel(width int, focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(width-2, 0))
}
