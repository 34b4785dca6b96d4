// Package tray provides the menu-bar icon and its menu.
package tray

import (
	"github.com/getlantern/systray"

	"screensaver-launcher/embedded"
	"screensaver-launcher/internal/i18n"
)

// State is the last launch result shown by the tray.
type State int

const (
	StateReady State = iota
	StateLaunched
	StateFailed
)

// Callbacks are the menu item handlers.
type Callbacks struct {
	OnLaunch              func()
	OnShowWindow          func()
	OnSettingsClick       func()
	OnChangeHotkey        func()
	OnLaunchAtLoginToggle func() bool
	OnNotificationsToggle func() bool
	OnAbout               func()
	OnQuit                func()
}

// Options are the initial checkbox states.
type Options struct {
	LaunchAtLogin bool
	Notifications bool
	Hotkey        string
}

// Tray manages the menu-bar icon.
type Tray struct {
	callbacks   Callbacks
	opts        Options
	state       State
	status      *systray.MenuItem
	launchBtn   *systray.MenuItem
	windowBtn   *systray.MenuItem
	settingsBtn *systray.MenuItem
	hotkeyBtn   *systray.MenuItem
	loginOn     *systray.MenuItem
	notifyOn    *systray.MenuItem
	aboutBtn    *systray.MenuItem
	quitBtn     *systray.MenuItem
}

// New creates a Tray.
func New(callbacks Callbacks, opts Options) *Tray {
	return &Tray{
		callbacks: callbacks,
		opts:      opts,
	}
}

// Run starts the tray. Blocks until Quit.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.IconIdle)
	systray.SetTooltip(i18n.T("app_tooltip"))

	t.status = systray.AddMenuItem(i18n.T("tray_ready"), "")
	t.status.Disable()

	systray.AddSeparator()

	t.launchBtn = systray.AddMenuItem(launchTitle(t.opts.Hotkey), i18n.T("tray_launch_hint"))

	systray.AddSeparator()

	t.windowBtn = systray.AddMenuItem(i18n.T("tray_show_window"), i18n.T("tray_show_window_hint"))
	t.settingsBtn = systray.AddMenuItem(i18n.T("tray_settings"), i18n.T("tray_settings_hint"))
	t.hotkeyBtn = systray.AddMenuItem(i18n.T("tray_change_hotkey"), i18n.T("tray_change_hotkey_hint"))
	t.loginOn = systray.AddMenuItemCheckbox(i18n.T("tray_launch_at_login"), i18n.T("tray_launch_at_login_hint"), t.opts.LaunchAtLogin)
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.opts.Notifications)

	systray.AddSeparator()

	t.aboutBtn = systray.AddMenuItem(i18n.T("tray_about"), "")
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.launchBtn.ClickedCh:
			call(t.callbacks.OnLaunch)

		case <-t.windowBtn.ClickedCh:
			call(t.callbacks.OnShowWindow)

		case <-t.settingsBtn.ClickedCh:
			call(t.callbacks.OnSettingsClick)

		case <-t.hotkeyBtn.ClickedCh:
			call(t.callbacks.OnChangeHotkey)

		case <-t.loginOn.ClickedCh:
			if t.callbacks.OnLaunchAtLoginToggle != nil {
				setChecked(t.loginOn, t.callbacks.OnLaunchAtLoginToggle())
			}

		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				setChecked(t.notifyOn, t.callbacks.OnNotificationsToggle())
			}

		case <-t.aboutBtn.ClickedCh:
			call(t.callbacks.OnAbout)

		case <-t.quitBtn.ClickedCh:
			call(t.callbacks.OnQuit)
			systray.Quit()
			return
		}
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func setChecked(item *systray.MenuItem, checked bool) {
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

// launchTitle appends the hotkey to the launch item title.
func launchTitle(hotkey string) string {
	if hotkey == "" {
		return i18n.T("tray_launch")
	}
	return i18n.T("tray_launch") + "    " + hotkey
}

func stateAssets(state State) (icon []byte, key string) {
	switch state {
	case StateLaunched:
		return embedded.IconLaunched, "tray_launched"
	case StateFailed:
		return embedded.IconFailed, "tray_failed"
	default:
		return embedded.IconIdle, "tray_ready"
	}
}

// statusTitle is the status item text for the last state.
func (t *Tray) statusTitle() string {
	_, key := stateAssets(t.state)
	return i18n.T(key)
}

// SetState updates the icon and the status item.
func (t *Tray) SetState(state State) {
	t.state = state
	icon, _ := stateAssets(state)
	systray.SetIcon(icon)
	systray.SetTooltip(i18n.T("app_name") + " - " + t.statusTitle())
	if t.status != nil {
		t.status.SetTitle(t.statusTitle())
	}
}

// SetHotkey shows the new hotkey next to the launch item.
func (t *Tray) SetHotkey(hotkey string) {
	t.opts.Hotkey = hotkey
	if t.launchBtn != nil {
		t.launchBtn.SetTitle(launchTitle(hotkey))
	}
}

// SetLaunchAtLogin syncs the checkbox after a change made elsewhere.
func (t *Tray) SetLaunchAtLogin(enabled bool) {
	t.opts.LaunchAtLogin = enabled
	if t.loginOn != nil {
		setChecked(t.loginOn, enabled)
	}
}

func (t *Tray) onExit() {}

// Quit stops the tray.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI re-renders every menu text in the current language.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.status != nil {
		t.status.SetTitle(t.statusTitle())
	}
	if t.launchBtn != nil {
		t.launchBtn.SetTitle(launchTitle(t.opts.Hotkey))
		t.launchBtn.SetTooltip(i18n.T("tray_launch_hint"))
	}
	if t.windowBtn != nil {
		t.windowBtn.SetTitle(i18n.T("tray_show_window"))
		t.windowBtn.SetTooltip(i18n.T("tray_show_window_hint"))
	}
	if t.settingsBtn != nil {
		t.settingsBtn.SetTitle(i18n.T("tray_settings"))
		t.settingsBtn.SetTooltip(i18n.T("tray_settings_hint"))
	}
	if t.hotkeyBtn != nil {
		t.hotkeyBtn.SetTitle(i18n.T("tray_change_hotkey"))
		t.hotkeyBtn.SetTooltip(i18n.T("tray_change_hotkey_hint"))
	}
	if t.loginOn != nil {
		t.loginOn.SetTitle(i18n.T("tray_launch_at_login"))
		t.loginOn.SetTooltip(i18n.T("tray_launch_at_login_hint"))
	}
	if t.notifyOn != nil {
		t.notifyOn.SetTitle(i18n.T("tray_notifications"))
		t.notifyOn.SetTooltip(i18n.T("tray_notifications_hint"))
	}
	if t.aboutBtn != nil {
		t.aboutBtn.SetTitle(i18n.T("tray_about"))
	}
	if t.quitBtn != nil {
		t.quitBtn.SetTitle(i18n.T("tray_quit"))
		t.quitBtn.SetTooltip(i18n.T("tray_quit_hint"))
	}
}
