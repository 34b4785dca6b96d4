// Package app wires the launcher, hotkey, preferences and UI together.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ncruces/zenity"

	"screensaver-launcher/internal/config"
	"screensaver-launcher/internal/dialog"
	"screensaver-launcher/internal/hotkey"
	"screensaver-launcher/internal/i18n"
	"screensaver-launcher/internal/launcher"
	"screensaver-launcher/internal/log"
	"screensaver-launcher/internal/login"
	"screensaver-launcher/internal/mainwindow"
	"screensaver-launcher/internal/notify"
	"screensaver-launcher/internal/settings"
	"screensaver-launcher/internal/status"
	"screensaver-launcher/internal/tray"
)

// Launch triggers, recorded in the log.
const (
	TriggerButton = "button"
	TriggerMenu   = "menu"
	TriggerHotkey = "hotkey"
	TriggerCLI    = "cli"
)

// launchTimeout bounds a single spawn.
const launchTimeout = 5 * time.Second

// Hotkeys registers the global launch hotkey. *hotkey.Handler implements it.
type Hotkeys interface {
	Apply(hotkeyString string) error
	Unregister() error
}

// LoginItem registers the app to start at login.
type LoginItem interface {
	Enabled() bool
	Enable() error
	Disable() error
}

// Notifier shows desktop notifications. *notify.Notifier implements it.
type Notifier interface {
	SetEnabled(enabled bool)
	Launched()
	LoginEnabled()
	Error(msg string)
}

// View is the part of the UI the app keeps in sync.
type View interface {
	HotkeyChanged(hotkey string)
	LaunchAtLoginChanged(enabled bool)
	LanguageChanged()
}

// osLogin adapts the login package to LoginItem.
type osLogin struct{}

func (osLogin) Enabled() bool  { return login.Enabled() }
func (osLogin) Enable() error  { return login.Enable() }
func (osLogin) Disable() error { return login.Disable() }

// Options configure New.
type Options struct {
	Version string
}

// App is the running menu-bar application.
type App struct {
	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	version  string
	config   *config.Config
	launcher launcher.Launcher
	hotkey   Hotkeys
	login    LoginItem
	notifier Notifier
	status   *status.Status
	view     View
	showErr  func(title, msg string)

	tray        *tray.Tray
	mainWin     *mainwindow.Window
	settingsWin *settings.Window
	closed      bool
}

// New creates the application.
func New(cfg *config.Config, opts Options) *App {
	// Interface language from the config
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	a := newApp(cfg, opts.Version)
	a.launcher = launcher.New(launcher.Resolve(cfg.Command()))
	a.hotkey = hotkey.New(func() { a.LaunchScreenSaver(TriggerHotkey) })
	a.login = osLogin{}
	a.notifier = notify.New(cfg.NotificationsEnabled())
	a.showErr = func(title, msg string) {
		go dialog.ShowError(title, msg)
	}

	// Main window
	a.mainWin = mainwindow.New()
	a.mainWin.SetHotkey(cfg.Hotkey())
	a.mainWin.OnLaunch(func() { a.LaunchScreenSaver(TriggerButton) })
	a.mainWin.OnSettings(a.ShowSettings)
	a.mainWin.OnQuit(a.Quit)

	// Settings window
	a.settingsWin = settings.New(cfg)
	a.settingsWin.OnLaunchAtLoginChange(a.SetLaunchAtLogin)
	a.settingsWin.OnUILangChange(func(i18n.Language) {
		a.view.LanguageChanged()
	})

	// Tray
	a.tray = tray.New(tray.Callbacks{
		OnLaunch:        func() { a.LaunchScreenSaver(TriggerMenu) },
		OnShowWindow:    a.mainWin.Show,
		OnSettingsClick: a.ShowSettings,
		OnChangeHotkey:  func() { go a.pickHotkey() },
		OnLaunchAtLoginToggle: func() bool {
			return a.SetLaunchAtLogin(!a.config.LaunchAtLogin())
		},
		OnNotificationsToggle: a.ToggleNotifications,
		OnAbout:               func() { go dialog.ShowAbout(a.version) },
		OnQuit:                a.Close,
	}, tray.Options{
		LaunchAtLogin: cfg.LaunchAtLogin(),
		Notifications: cfg.NotificationsEnabled(),
		Hotkey:        cfg.Hotkey(),
	})

	view := &desktopView{tray: a.tray, mainWin: a.mainWin, settingsWin: a.settingsWin}
	a.status.OnChange(view.statusChanged)
	a.view = view
	a.watchConfig()
	return a
}

func newApp(cfg *config.Config, version string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		ctx:     ctx,
		cancel:  cancel,
		version: version,
		config:  cfg,
		status:  status.New(status.SuccessDuration),
	}
}

// watchConfig wires preference changes (from the UI or an external edit) to
// the hotkey and the login item.
func (a *App) watchConfig() {
	a.config.OnHotkeyChange(a.applyHotkey)
	a.config.OnLaunchAtLoginChange(a.syncLogin)
}

// Run starts the tray. Blocks until Quit.
func (a *App) Run() {
	a.tray.Run(func() {
		a.Start()
		a.mainWin.Show()

		go func() {
			if err := a.config.Watch(a.ctx); err != nil {
				log.Warnf("config: watch: %v", err)
			}
		}()
	})
}

// Start registers the stored hotkey and reconciles launch at login with the OS.
func (a *App) Start() {
	if err := a.hotkey.Apply(a.config.Hotkey()); err != nil {
		a.hotkeyFailed(err)
		a.showErr(i18n.T("error_hotkey_register"), err.Error())
	}

	if osEnabled := a.login.Enabled(); osEnabled != a.config.LaunchAtLogin() {
		log.Infof("login: stored flag differs from system (%v), using system", osEnabled)
		a.config.SetLaunchAtLogin(osEnabled)
	}
}

// LaunchScreenSaver starts the screen saver. Every trigger ends up here.
func (a *App) LaunchScreenSaver(trigger string) {
	ctx, cancel := context.WithTimeout(a.ctx, launchTimeout)
	defer cancel()

	err := a.launcher.Launch(ctx)
	log.Launch(trigger, err)

	if err != nil {
		a.status.Failed(err)
		a.notifier.Error(i18n.T("error_launch") + ": " + err.Error())
	} else {
		a.status.Succeeded()
		a.notifier.Launched()
	}
}

// applyHotkey re-registers the global hotkey after the preference changed.
func (a *App) applyHotkey(hk string) {
	a.view.HotkeyChanged(hk)
	if err := a.hotkey.Apply(hk); err != nil {
		a.hotkeyFailed(err)
	}
}

func (a *App) hotkeyFailed(err error) {
	key := "error_hotkey_register"
	if errors.Is(err, config.ErrUnknownKey) || errors.Is(err, config.ErrEmptyKey) {
		key = "error_hotkey_invalid"
	}
	log.Errorf("hotkey: %v", err)
	a.notifier.Error(i18n.T(key) + ": " + err.Error())
}

// SetLaunchAtLogin registers or unregisters the login item and persists the
// flag once the OS accepted the change. It returns the resulting state.
func (a *App) SetLaunchAtLogin(enabled bool) bool {
	if err := a.changeLogin(enabled); err != nil {
		log.Errorf("login: %v", err)
		a.notifier.Error(i18n.T("error_login") + ": " + err.Error())
		current := a.config.LaunchAtLogin()
		a.view.LaunchAtLoginChanged(current)
		return current
	}
	a.config.SetLaunchAtLogin(enabled)
	if enabled {
		a.notifier.LoginEnabled()
	}
	return enabled
}

// syncLogin follows launch_at_login changes made through the config file.
func (a *App) syncLogin(enabled bool) {
	if a.login.Enabled() != enabled {
		if err := a.changeLogin(enabled); err != nil {
			log.Errorf("login: %v", err)
			a.notifier.Error(i18n.T("error_login") + ": " + err.Error())
		}
	}
	a.view.LaunchAtLoginChanged(enabled)
}

func (a *App) changeLogin(enabled bool) error {
	if enabled {
		return a.login.Enable()
	}
	return a.login.Disable()
}

// ToggleNotifications flips the notifications preference.
func (a *App) ToggleNotifications() bool {
	enabled := a.config.ToggleNotifications()
	a.notifier.SetEnabled(enabled)
	return enabled
}

// ShowSettings opens the settings window.
func (a *App) ShowSettings() {
	if a.settingsWin != nil {
		a.settingsWin.Show()
	}
}

// pickHotkey runs the native hotkey picker and stores the result.
func (a *App) pickHotkey() {
	current, err := a.config.Shortcut()
	if err != nil {
		current = config.DefaultShortcut()
	}
	sc, err := dialog.SelectHotkey(current)
	if errors.Is(err, zenity.ErrCanceled) {
		return
	}
	if err != nil {
		a.hotkeyFailed(err)
		return
	}
	a.config.SetHotkey(sc.String())
}

// Quit closes the app and the tray.
func (a *App) Quit() {
	a.Close()
	if a.tray != nil {
		a.tray.Quit()
	}
}

// Close releases the hotkey and hides the windows.
func (a *App) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.mu.Unlock()

	a.cancel()

	if a.hotkey != nil {
		if err := a.hotkey.Unregister(); err != nil {
			log.Warnf("hotkey: unregister: %v", err)
		}
	}
	if a.mainWin != nil {
		a.mainWin.Hide()
	}
	if a.settingsWin != nil {
		a.settingsWin.Hide()
	}
}
