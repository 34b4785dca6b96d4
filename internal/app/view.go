package app

import (
	"screensaver-launcher/internal/mainwindow"
	"screensaver-launcher/internal/settings"
	"screensaver-launcher/internal/status"
	"screensaver-launcher/internal/tray"
)

// desktopView pushes app state into the tray and the Gio windows.
type desktopView struct {
	tray        *tray.Tray
	mainWin     *mainwindow.Window
	settingsWin *settings.Window
}

// statusChanged follows the launch feedback, including the success timeout.
func (v *desktopView) statusChanged(snap status.Snapshot) {
	v.mainWin.SetStatus(snap)
	v.tray.SetState(trayState(snap))
}

func trayState(snap status.Snapshot) tray.State {
	switch {
	case snap.Err != nil:
		return tray.StateFailed
	case snap.Success:
		return tray.StateLaunched
	default:
		return tray.StateReady
	}
}

func (v *desktopView) HotkeyChanged(hotkey string) {
	v.tray.SetHotkey(hotkey)
	v.mainWin.SetHotkey(hotkey)
	v.settingsWin.Refresh()
}

func (v *desktopView) LaunchAtLoginChanged(enabled bool) {
	v.tray.SetLaunchAtLogin(enabled)
	v.settingsWin.SetLaunchAtLogin(enabled)
}

func (v *desktopView) LanguageChanged() {
	v.tray.RefreshUI()
}
