// Package helpbindings provides a scrollable overlay listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/turntable/internal/keymap"
	"github.com/llehouerou/turntable/internal/ui"
	"github.com/llehouerou/turntable/internal/ui/styles"
)

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextBands,
	keymap.ContextTurntable,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:    "Global",
	keymap.ContextBands:     "Band List",
	keymap.ContextTurntable: "Turntable",
}

// Result tells the parent what a key did.
type Result int

const (
	Handled Result = iota
	Closed
)

// Model holds the state for the help overlay.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help overlay for the given contexts.
func New(contexts ...string) Model {
	var m Model
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	return m
}

// HandleKey scrolls on j/k and reports Closed on ?, esc or q.
func (m *Model) HandleKey(key string) Result {
	switch key {
	case "?", "esc", "q":
		return Closed
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return Handled
}

// ScrollOffset returns the first visible content line.
func (m Model) ScrollOffset() int {
	return m.scrollOffset
}

// View renders the overlay centered in the model size.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	lines := strings.Split(m.buildContent(), "\n")
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := lines[start:end]

	var b strings.Builder
	b.WriteString(styles.Title("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.buildFooter()))

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(0, 2).
		Width(maxWidth + 4).
		Render(b.String())
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) buildContent() string {
	s := styles.T().S()

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(formatKeys(b.Keys)))
	}

	var sb strings.Builder
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(s.Warning.Bold(true).Render(categoryLabels[b.Context]))
			sb.WriteString("\n")
			current = b.Context
		}
		keys := formatKeys(b.Keys)
		sb.WriteString(s.Key.Render(keys + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(keys))))
		sb.WriteString("  ")
		sb.WriteString(s.Base.Render(b.Description))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// formatKeys joins key names, showing the space bar by name.
func formatKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// title, footer, borders and margins
	return max(m.Height()-8, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
