//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", ContextGlobal, 3},
		{"bands context", ContextBands, 5},
		{"turntable context", ContextTurntable, 8},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestBindings_NoDuplicateKeysPerContext(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, key := range b.Keys {
			id := b.Context + "/" + key
			if prev, ok := seen[id]; ok && prev != b.Action {
				t.Errorf("key %q in %s bound to both %q and %q", key, b.Context, prev, b.Action)
			}
			seen[id] = b.Action
		}
	}
}

func TestBindings_HaveDescriptions(t *testing.T) {
	for _, b := range Bindings {
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
	}
}
