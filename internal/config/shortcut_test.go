package config

import (
	"errors"
	"testing"
)

func TestParseShortcut(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Shortcut
	}{
		{"default", "⌘⌥+S", Shortcut{ModCommand | ModOption, KeyS}},
		{"all modifiers", "⌘⌥⌃⇧+F12", Shortcut{ModCommand | ModOption | ModControl | ModShift, KeyF12}},
		{"order ignored", "⇧⌘+A", Shortcut{ModCommand | ModShift, KeyA}},
		{"lowercase key", "⌃+q", Shortcut{ModControl, KeyQ}},
		{"digit", "⌥+0", Shortcut{ModOption, Key0}},
		{"whitespace", " ⌘ + L ", Shortcut{ModCommand, KeyL}},
		{"no modifiers", "+F5", Shortcut{0, KeyF5}},
		{"unknown symbols ignored", "x⌘y+B", Shortcut{ModCommand, KeyB}},
		{"extra parts ignored", "⌘+C+D", Shortcut{ModCommand, KeyC}},
		{"no separator falls back", "⌘⌥S", DefaultShortcut()},
		{"empty falls back", "", DefaultShortcut()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShortcut(tt.in)
			if err != nil {
				t.Fatalf("ParseShortcut(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseShortcut(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseShortcutErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"⌘+", ErrEmptyKey},
		{"⌘+  ", ErrEmptyKey},
		{"⌘+F13", ErrUnknownKey},
		{"⌘+Space", ErrUnknownKey},
		{"⌘⌥+SS", ErrUnknownKey},
	}
	for _, tt := range tests {
		_, err := ParseShortcut(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseShortcut(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestShortcutStringCanonical(t *testing.T) {
	sc := Shortcut{ModShift | ModControl | ModOption | ModCommand, KeyZ}
	if got := sc.String(); got != "⌘⌥⌃⇧+Z" {
		t.Errorf("String() = %q, want ⌘⌥⌃⇧+Z", got)
	}
	if got := DefaultShortcut().String(); got != DefaultHotkey {
		t.Errorf("default String() = %q, want %q", got, DefaultHotkey)
	}
}

func TestShortcutRoundTripAllKeys(t *testing.T) {
	for m := Modifier(0); m < 16; m++ {
		for _, k := range AvailableKeys() {
			sc := Shortcut{Modifiers: m, Key: k}
			got, err := ParseShortcut(sc.String())
			if err != nil {
				t.Fatalf("ParseShortcut(%q): %v", sc.String(), err)
			}
			if got != sc {
				t.Fatalf("round trip %q = %+v, want %+v", sc.String(), got, sc)
			}
		}
	}
}

func TestAvailableKeys(t *testing.T) {
	keys := AvailableKeys()
	if len(keys) != 48 {
		t.Fatalf("len(AvailableKeys()) = %d, want 48", len(keys))
	}
	seen := make(map[Key]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key %q", k)
		}
		seen[k] = true
		if !ValidKey(k) {
			t.Errorf("ValidKey(%q) = false", k)
		}
	}
	if ValidKey("f1") {
		t.Error("ValidKey is case sensitive, lowercase tokens must be rejected")
	}
}

func TestModifierHelpers(t *testing.T) {
	m := ModCommand | ModShift
	if !m.Has(ModCommand) || m.Has(ModOption) {
		t.Errorf("Has mismatch for %q", m.Symbols())
	}
	m = m.Toggle(ModShift).Toggle(ModControl)
	if m.Symbols() != "⌘⌃" {
		t.Errorf("Symbols() = %q, want ⌘⌃", m.Symbols())
	}
	list := m.List()
	if len(list) != 2 || list[0] != ModCommand || list[1] != ModControl {
		t.Errorf("List() = %v", list)
	}
	if ModifierName(ModOption) != "Option" || ModifierSymbol(ModOption) != "⌥" {
		t.Error("ModifierName/ModifierSymbol mismatch for Option")
	}
}

func TestDisplayHotkey(t *testing.T) {
	tests := map[string]string{
		"⌃⇧+F1": "⌃⇧+F1",
		"⌘⌥S":   "⌘⌥+S",
		"":      "⌘⌥+S",
		"⌘+A+B": "⌘+A",
	}
	for in, want := range tests {
		if got := DisplayHotkey(in); got != want {
			t.Errorf("DisplayHotkey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := map[string]Modifier{
		"":       0,
		"⇧⌘":     ModCommand | ModShift,
		"x⌃y":    ModControl,
		"⌘⌥⌃⇧":   ModCommand | ModOption | ModControl | ModShift,
		"Ctrl+⌥": ModOption,
	}
	for in, want := range tests {
		if got := ParseModifiers(in); got != want {
			t.Errorf("ParseModifiers(%q) = %q, want %q", in, got.Symbols(), want.Symbols())
		}
	}
}
