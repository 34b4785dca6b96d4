package settings

import (
	"slices"
	"testing"

	"screensaver-launcher/internal/config"
)

func TestSelectionFrom(t *testing.T) {
	tests := []struct {
		in   string
		mods config.Modifier
		key  config.Key
	}{
		{"⌘⌥+S", config.ModCommand | config.ModOption, config.KeyS},
		{"⌃⇧+f5", config.ModControl | config.ModShift, config.KeyF5},
		{"⌘+Space", config.ModCommand, config.KeyS},
		{"+7", 0, config.Key7},
		{"⌘⌥S", config.ModCommand | config.ModOption, config.KeyS},
		{"garbage", config.ModCommand | config.ModOption, config.KeyS},
		{"", config.ModCommand | config.ModOption, config.KeyS},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := selectionFrom(tt.in)
			if got.mods != tt.mods || got.key != tt.key {
				t.Errorf("selectionFrom(%q) = %q+%s, want %q+%s",
					tt.in, got.mods.Symbols(), got.key, tt.mods.Symbols(), tt.key)
			}
		})
	}
}

func TestSelectionEdits(t *testing.T) {
	sel := selectionFrom("⌘+A")

	sel = sel.toggle(config.ModShift)
	if got := sel.hotkey(); got != "⌘⇧+A" {
		t.Errorf("after toggle: %q", got)
	}

	sel = sel.toggle(config.ModCommand).withKey(config.KeyF12)
	if got := sel.hotkey(); got != "⇧+F12" {
		t.Errorf("after key change: %q", got)
	}

	sel = sel.withKey("Space")
	if sel.key != config.KeyF12 {
		t.Errorf("invalid key accepted: %q", sel.key)
	}
}

func TestSelectionAllowsNoModifiers(t *testing.T) {
	sel := selectionFrom("⌥+B").toggle(config.ModOption)
	if got := sel.hotkey(); got != "+B" {
		t.Errorf("hotkey() = %q, want +B", got)
	}
	if got := sel.chips(); !slices.Equal(got, []string{"B"}) {
		t.Errorf("chips() = %v", got)
	}
}

func TestSelectionChipsOrder(t *testing.T) {
	got := selectionFrom("⇧⌃⌥⌘+9").chips()
	want := []string{"⌘", "⌥", "⌃", "⇧", "9"}
	if !slices.Equal(got, want) {
		t.Errorf("chips() = %v, want %v", got, want)
	}
}

func TestSelectionMatchesRegisteredShortcut(t *testing.T) {
	for _, in := range []string{"⌘⌥S", "", "⌃+F3", "⇧⌘+z"} {
		registered, err := config.ParseShortcut(in)
		if err != nil {
			t.Fatalf("ParseShortcut(%q): %v", in, err)
		}
		if got := selectionFrom(in).hotkey(); got != registered.String() {
			t.Errorf("selectionFrom(%q) shows %q, registered %q", in, got, registered)
		}
	}
}

func TestKeyClickKeepsDefaultModifiers(t *testing.T) {
	sel := selectionFrom("⌘⌥S").withKey(config.KeyD)
	if got := sel.hotkey(); got != "⌘⌥+D" {
		t.Errorf("hotkey() = %q, want ⌘⌥+D", got)
	}
}
