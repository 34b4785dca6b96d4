// Package settings provides Gio-based settings UI.
package settings

import (
	"sync"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"

	"screensaver-launcher/internal/config"
	"screensaver-launcher/internal/i18n"
	"screensaver-launcher/internal/log"
	"screensaver-launcher/internal/ui"
)

// Window represents the settings window.
type Window struct {
	mu     sync.Mutex
	config *config.Config
	host   *ui.Host

	// UI state
	sel            selection
	selectedUILang i18n.Language

	// Widgets
	loginToggle widget.Bool
	modButtons  map[config.Modifier]*widget.Clickable
	keyButtons  map[config.Key]*widget.Clickable
	langButtons map[i18n.Language]*widget.Clickable
	keyList     widget.List
	contentList widget.List
	doneBtn     widget.Clickable

	// Callbacks
	onLaunchAtLoginChange func(enabled bool) bool
	onUILangChange        func(lang i18n.Language)
}

// New creates a new settings window.
func New(cfg *config.Config) *Window {
	w := &Window{
		config:      cfg,
		modButtons:  make(map[config.Modifier]*widget.Clickable),
		keyButtons:  make(map[config.Key]*widget.Clickable),
		langButtons: make(map[i18n.Language]*widget.Clickable),
	}
	for _, m := range config.AvailableModifiers() {
		w.modButtons[m] = new(widget.Clickable)
	}
	for _, k := range config.AvailableKeys() {
		w.keyButtons[k] = new(widget.Clickable)
	}
	for _, lang := range i18n.AvailableLanguages() {
		w.langButtons[lang] = new(widget.Clickable)
	}
	w.keyList.Axis = layout.Horizontal
	w.contentList.Axis = layout.Vertical

	w.load()

	w.host = ui.NewHost(ui.Options{
		Title:  i18n.T("settings_title"),
		Width:  unit.Dp(460),
		Height: unit.Dp(440),
	}, w.frame)
	return w
}

// OnLaunchAtLoginChange sets the callback for the launch at login toggle. It
// returns the state that actually took effect.
func (w *Window) OnLaunchAtLoginChange(fn func(enabled bool) bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onLaunchAtLoginChange = fn
}

// OnUILangChange sets the callback for when user changes UI language.
func (w *Window) OnUILangChange(fn func(lang i18n.Language)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onUILangChange = fn
}

// Show displays the settings window (non-blocking).
func (w *Window) Show() {
	if w.host.Visible() {
		return
	}
	w.load()
	w.host.SetTitle(i18n.T("settings_title"))
	w.host.Show()
}

// Hide closes the settings window.
func (w *Window) Hide() {
	w.host.Hide()
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	return w.host.Visible()
}

// SetLaunchAtLogin syncs the toggle after a change made elsewhere.
func (w *Window) SetLaunchAtLogin(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.loginToggle.Value = enabled
}

// Refresh reloads the window state after preferences changed elsewhere.
func (w *Window) Refresh() {
	w.load()
}

// load reloads the selection from the stored preferences.
func (w *Window) load() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sel = selectionFrom(w.config.Hotkey())
	w.loginToggle.Value = w.config.LaunchAtLogin()
	w.selectedUILang = i18n.GetLanguage()
}

func (w *Window) frame(gtx layout.Context) {
	w.handleEvents(gtx)
	w.draw(gtx)
}

func (w *Window) handleEvents(gtx layout.Context) {
	// Escape closes the window
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			w.host.Close()
		}
	}

	if w.doneBtn.Clicked(gtx) {
		w.host.Close()
	}

	w.mu.Lock()
	loginChanged := w.loginToggle.Update(gtx)
	loginValue := w.loginToggle.Value
	w.mu.Unlock()
	if loginChanged {
		w.toggleLaunchAtLogin(loginValue)
	}

	w.mu.Lock()
	sel := w.sel
	w.mu.Unlock()

	changed := false
	for _, m := range config.AvailableModifiers() {
		if w.modButtons[m].Clicked(gtx) {
			sel = sel.toggle(m)
			changed = true
		}
	}
	for _, k := range config.AvailableKeys() {
		if w.keyButtons[k].Clicked(gtx) {
			sel = sel.withKey(k)
			changed = true
		}
	}
	if changed {
		w.applySelection(sel)
	}

	for _, lang := range i18n.AvailableLanguages() {
		if w.langButtons[lang].Clicked(gtx) {
			w.selectLanguage(lang)
		}
	}
}

// applySelection stores the edited hotkey right away, re-registration follows
// from the config change callback.
func (w *Window) applySelection(sel selection) {
	w.mu.Lock()
	if sel == w.sel {
		w.mu.Unlock()
		return
	}
	w.sel = sel
	w.mu.Unlock()

	hk := sel.hotkey()
	log.Debugf("settings: hotkey %s", hk)
	w.config.SetHotkey(hk)
}

func (w *Window) toggleLaunchAtLogin(enabled bool) {
	w.mu.Lock()
	callback := w.onLaunchAtLoginChange
	w.mu.Unlock()

	actual := enabled
	if callback != nil {
		actual = callback(enabled)
	}

	w.mu.Lock()
	w.loginToggle.Value = actual
	w.mu.Unlock()
}

func (w *Window) selectLanguage(lang i18n.Language) {
	w.mu.Lock()
	if w.selectedUILang == lang {
		w.mu.Unlock()
		return
	}
	w.selectedUILang = lang
	callback := w.onUILangChange
	w.mu.Unlock()

	i18n.SetLanguage(lang)
	w.config.SetUILanguage(string(lang))
	w.host.SetTitle(i18n.T("settings_title"))
	if callback != nil {
		callback(lang)
	}
}

func (w *Window) getSelection() selection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sel
}

func (w *Window) getSelectedUILang() i18n.Language {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectedUILang
}
