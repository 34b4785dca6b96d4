//go:build windows

package hotkey

import (
	"golang.design/x/hotkey"

	"screensaver-launcher/internal/config"
)

// modifierMap maps config.Modifier to Windows modifiers
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCommand: hotkey.ModWin,
	config.ModOption:  hotkey.ModAlt,
	config.ModControl: hotkey.ModCtrl,
	config.ModShift:   hotkey.ModShift,
}
