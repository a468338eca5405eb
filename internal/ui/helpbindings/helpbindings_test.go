package helpbindings

import (
	"testing"

	"github.com/llehouerou/turntable/internal/keymap"
	"github.com/llehouerou/turntable/internal/ui/testutil"
)

func newHelp(height int, contexts ...string) Model {
	m := New(contexts...)
	m.SetSize(80, height)
	return m
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"?", "esc", "q"} {
		m := newHelp(24, keymap.ContextGlobal)
		if got := m.HandleKey(key); got != Closed {
			t.Errorf("HandleKey(%q) = %v, want Closed", key, got)
		}
	}
}

func TestHelpBindings_OtherKeysHandled(t *testing.T) {
	m := newHelp(24, keymap.ContextGlobal)
	if got := m.HandleKey("x"); got != Handled {
		t.Errorf("HandleKey(x) = %v, want Handled", got)
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m := newHelp(12, keymap.ContextGlobal, keymap.ContextBands, keymap.ContextTurntable)

	m.HandleKey("j")
	m.HandleKey("down")
	if m.ScrollOffset() != 2 {
		t.Errorf("scroll offset = %d, want 2", m.ScrollOffset())
	}

	m.HandleKey("k")
	if m.ScrollOffset() != 1 {
		t.Errorf("scroll offset = %d, want 1", m.ScrollOffset())
	}

	for range 100 {
		m.HandleKey("j")
	}
	if m.ScrollOffset() != m.maxScroll() {
		t.Errorf("scroll offset = %d, want max %d", m.ScrollOffset(), m.maxScroll())
	}

	for range 100 {
		m.HandleKey("up")
	}
	if m.ScrollOffset() != 0 {
		t.Errorf("scroll offset = %d, want 0", m.ScrollOffset())
	}
}

func TestHelpBindings_NoScrollWhenContentFits(t *testing.T) {
	m := newHelp(60, keymap.ContextGlobal)
	m.HandleKey("j")
	if m.ScrollOffset() != 0 {
		t.Errorf("scroll offset = %d, want 0", m.ScrollOffset())
	}
	if !testutil.ContainsLine(m.View(), "?/esc close") {
		t.Error("expected close hint")
	}
	if testutil.ContainsLine(m.View(), "j/k scroll") {
		t.Error("scroll hint should be hidden when content fits")
	}
}

func TestHelpBindings_View(t *testing.T) {
	m := newHelp(60, keymap.ContextGlobal, keymap.ContextTurntable)
	out := m.View()

	for _, want := range []string{"Help", "Global", "Turntable", "Quit", "space", "Play/pause"} {
		if !testutil.ContainsLine(out, want) {
			t.Errorf("expected %q in:\n%s", want, testutil.StripANSI(out))
		}
	}
	if testutil.ContainsLine(out, "Band List") {
		t.Error("band list context was not requested")
	}
}

func TestHelpBindings_ContextOrder(t *testing.T) {
	// Requested order does not matter; display order is fixed.
	m := New(keymap.ContextTurntable, keymap.ContextGlobal)
	if len(m.bindings) == 0 {
		t.Fatal("expected bindings")
	}
	if m.bindings[0].Context != keymap.ContextGlobal {
		t.Errorf("first context = %q, want global", m.bindings[0].Context)
	}
}

func TestHelpBindings_EmptySize(t *testing.T) {
	m := New(keymap.ContextGlobal)
	if m.View() != "" {
		t.Error("expected empty view without size")
	}
}

func TestFormatKeys(t *testing.T) {
	if got := formatKeys([]string{" ", "p"}); got != "space, p" {
		t.Errorf("formatKeys = %q", got)
	}
}
