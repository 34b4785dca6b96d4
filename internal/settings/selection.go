package settings

import (
	"strings"

	"screensaver-launcher/internal/config"
)

// selection is the hotkey being edited.
type selection struct {
	mods config.Modifier
	key  config.Key
}

// selectionFrom loads the editor state from a stored hotkey string. A string
// without "+" loads the default shortcut, as registration does. Otherwise the
// modifiers are kept even when the key token is unknown, and the key falls
// back to the default one.
func selectionFrom(hotkey string) selection {
	def := config.DefaultShortcut()

	parts := strings.Split(hotkey, "+")
	if len(parts) < 2 {
		return selection{mods: def.Modifiers, key: def.Key}
	}
	sel := selection{mods: config.ParseModifiers(parts[0]), key: def.Key}

	key := config.Key(strings.ToUpper(strings.TrimSpace(parts[1])))
	if config.ValidKey(key) {
		sel.key = key
	}
	return sel
}

func (s selection) toggle(m config.Modifier) selection {
	s.mods = s.mods.Toggle(m)
	return s
}

func (s selection) withKey(k config.Key) selection {
	if config.ValidKey(k) {
		s.key = k
	}
	return s
}

// hotkey formats the selection as "<symbols>+<key>".
func (s selection) hotkey() string {
	return config.Shortcut{Modifiers: s.mods, Key: s.key}.String()
}

// chips returns the key caps shown as the current hotkey.
func (s selection) chips() []string {
	out := make([]string, 0, 5)
	for _, m := range s.mods.List() {
		out = append(out, config.ModifierSymbol(m))
	}
	return append(out, string(s.key))
}
