package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string", "Dynamite", "Dynamite"},
		{"keeps tab", "a\tb", "a\tb"},
		{"strips newline", "Butter\r\n", "Butter"},
		{"strips escape", "\x1b[31mred", "[31mred"},
		{"replaces nbsp", "Life\u00a0Goes\u00a0On", "Life Goes On"},
		{"drops invalid bytes", "ab\xffc", "abc"},
		{"keeps hangul", "봄날", "봄날"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"empty string", "", 10, ""},
		{"wide characters", "방탄소년단", 5, "방탄…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		input string
		width int
	}{
		{"hi", 6},
		{"hello world", 6},
		{"봄날", 6},
		{"", 3},
	}
	for _, tt := range tests {
		got := TruncateAndPad(tt.input, tt.width)
		if w := lipgloss.Width(got); w != tt.width {
			t.Errorf("TruncateAndPad(%q, %d) width = %d", tt.input, tt.width, w)
		}
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abcdef", 3, "abcdef"},
	}
	for _, tt := range tests {
		if got := Center(tt.input, tt.width); got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if w := lipgloss.Width(got); w != 20 {
		t.Errorf("Row width = %d, want 20", w)
	}
	if !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Errorf("Row = %q", got)
	}

	narrow := Row("left", "right", 4)
	if narrow != "left right" {
		t.Errorf("narrow Row = %q, want %q", narrow, "left right")
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("the quick brown fox jumps", 10)
	for line := range strings.SplitSeq(got, "\n") {
		if w := lipgloss.Width(line); w > 10 {
			t.Errorf("line %q exceeds width: %d", line, w)
		}
	}
	if Wrap("abc", 0) != "abc" {
		t.Error("Wrap with zero width should return input")
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}
