//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"

	"screensaver-launcher/internal/config"
)

// modifierMap maps config.Modifier to X11 modifiers
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCommand: hotkey.Mod4, // Super
	config.ModOption:  hotkey.Mod1, // Alt
	config.ModControl: hotkey.ModCtrl,
	config.ModShift:   hotkey.ModShift,
}
