//go:build darwin

package hotkey

import (
	"golang.design/x/hotkey"

	"screensaver-launcher/internal/config"
)

// modifierMap maps config.Modifier to macOS modifiers
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCommand: hotkey.ModCmd,
	config.ModOption:  hotkey.ModOption,
	config.ModControl: hotkey.ModCtrl,
	config.ModShift:   hotkey.ModShift,
}
