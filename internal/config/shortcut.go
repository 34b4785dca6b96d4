package config

import (
	"errors"
	"fmt"
	"strings"
)

// Modifier is a set of modifier keys held together with the hotkey.
type Modifier uint8

const (
	ModCommand Modifier = 1 << iota // ⌘
	ModOption                       // ⌥
	ModControl                      // ⌃
	ModShift                        // ⇧
)

// Key is a key token as it appears in the hotkey string.
type Key string

const (
	KeyA   Key = "A"
	KeyB   Key = "B"
	KeyC   Key = "C"
	KeyD   Key = "D"
	KeyE   Key = "E"
	KeyF   Key = "F"
	KeyG   Key = "G"
	KeyH   Key = "H"
	KeyI   Key = "I"
	KeyJ   Key = "J"
	KeyK   Key = "K"
	KeyL   Key = "L"
	KeyM   Key = "M"
	KeyN   Key = "N"
	KeyO   Key = "O"
	KeyP   Key = "P"
	KeyQ   Key = "Q"
	KeyR   Key = "R"
	KeyS   Key = "S"
	KeyT   Key = "T"
	KeyU   Key = "U"
	KeyV   Key = "V"
	KeyW   Key = "W"
	KeyX   Key = "X"
	KeyY   Key = "Y"
	KeyZ   Key = "Z"
	Key0   Key = "0"
	Key1   Key = "1"
	Key2   Key = "2"
	Key3   Key = "3"
	Key4   Key = "4"
	Key5   Key = "5"
	Key6   Key = "6"
	Key7   Key = "7"
	Key8   Key = "8"
	Key9   Key = "9"
	KeyF1  Key = "F1"
	KeyF2  Key = "F2"
	KeyF3  Key = "F3"
	KeyF4  Key = "F4"
	KeyF5  Key = "F5"
	KeyF6  Key = "F6"
	KeyF7  Key = "F7"
	KeyF8  Key = "F8"
	KeyF9  Key = "F9"
	KeyF10 Key = "F10"
	KeyF11 Key = "F11"
	KeyF12 Key = "F12"
)

// DefaultHotkey is used when nothing is stored or the stored value has no "+".
const DefaultHotkey = "⌘⌥+S"

var (
	// ErrEmptyKey is returned when the key part of a hotkey string is blank.
	ErrEmptyKey = errors.New("hotkey: empty key")
	// ErrUnknownKey is returned for key tokens outside AvailableKeys.
	ErrUnknownKey = errors.New("hotkey: unknown key")
)

// Shortcut is the parsed form of a hotkey string.
type Shortcut struct {
	Modifiers Modifier
	Key       Key
}

// DefaultShortcut returns ⌘⌥+S.
func DefaultShortcut() Shortcut {
	return Shortcut{Modifiers: ModCommand | ModOption, Key: KeyS}
}

var modifierSymbols = []struct {
	mod    Modifier
	symbol string
	name   string
}{
	{ModCommand, "⌘", "Command"},
	{ModOption, "⌥", "Option"},
	{ModControl, "⌃", "Control"},
	{ModShift, "⇧", "Shift"},
}

var validKeys = func() map[Key]bool {
	m := make(map[Key]bool)
	for _, k := range AvailableKeys() {
		m[k] = true
	}
	return m
}()

// ParseShortcut converts a hotkey string such as "⌘⌥+S" into a Shortcut.
//
// Strings without a "+" separator resolve to DefaultShortcut. Modifier symbols
// are matched by containment, so order and unknown characters don't matter.
func ParseShortcut(s string) (Shortcut, error) {
	parts := strings.Split(s, "+")
	if len(parts) < 2 {
		return DefaultShortcut(), nil
	}

	mods := strings.TrimSpace(parts[0])
	token := strings.ToUpper(strings.TrimSpace(parts[1]))

	sc := Shortcut{Modifiers: ParseModifiers(mods)}
	if token == "" {
		return Shortcut{}, ErrEmptyKey
	}
	if !validKeys[Key(token)] {
		return Shortcut{}, fmt.Errorf("%w: %q", ErrUnknownKey, token)
	}
	sc.Key = Key(token)
	return sc, nil
}

// ParseModifiers collects every modifier symbol contained in s.
func ParseModifiers(s string) Modifier {
	var m Modifier
	for _, ms := range modifierSymbols {
		if strings.Contains(s, ms.symbol) {
			m |= ms.mod
		}
	}
	return m
}

// String returns the canonical hotkey string, modifiers ordered ⌘⌥⌃⇧.
func (s Shortcut) String() string {
	return s.Modifiers.Symbols() + "+" + string(s.Key)
}

// Symbols returns the modifier symbols in canonical order.
func (m Modifier) Symbols() string {
	var b strings.Builder
	for _, ms := range modifierSymbols {
		if m&ms.mod != 0 {
			b.WriteString(ms.symbol)
		}
	}
	return b.String()
}

// Has reports whether all flags of mod are set.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// Toggle flips mod in the set.
func (m Modifier) Toggle(mod Modifier) Modifier {
	return m ^ mod
}

// List returns the individual flags of the set in canonical order.
func (m Modifier) List() []Modifier {
	out := make([]Modifier, 0, len(modifierSymbols))
	for _, ms := range modifierSymbols {
		if m&ms.mod != 0 {
			out = append(out, ms.mod)
		}
	}
	return out
}

// ModifierSymbol returns the symbol of a single modifier flag.
func ModifierSymbol(m Modifier) string {
	for _, ms := range modifierSymbols {
		if ms.mod == m {
			return ms.symbol
		}
	}
	return ""
}

// ModifierName returns the English name of a single modifier flag.
func ModifierName(m Modifier) string {
	for _, ms := range modifierSymbols {
		if ms.mod == m {
			return ms.name
		}
	}
	return ""
}

// ValidKey reports whether k can be used in a hotkey.
func ValidKey(k Key) bool {
	return validKeys[k]
}

// DisplayHotkey formats a stored hotkey string for the main window footer.
func DisplayHotkey(s string) string {
	parts := strings.Split(s, "+")
	if len(parts) < 2 {
		return DefaultHotkey
	}
	return parts[0] + "+" + parts[1]
}

// AvailableModifiers returns the modifiers in display order.
func AvailableModifiers() []Modifier {
	return []Modifier{ModCommand, ModOption, ModControl, ModShift}
}

// AvailableKeys returns every key a hotkey can use.
func AvailableKeys() []Key {
	return []Key{
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}
}
