// Package mainwindow provides the launcher window with the big Launch button.
package mainwindow

import (
	"sync"
	"time"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"

	"screensaver-launcher/internal/i18n"
	"screensaver-launcher/internal/status"
	"screensaver-launcher/internal/ui"
)

// pressDuration is the press animation played before the launch fires.
const pressDuration = 150 * time.Millisecond

// Window represents the main launcher window.
type Window struct {
	mu   sync.Mutex
	host *ui.Host

	// State
	snapshot status.Snapshot
	hotkey   string
	pressAt  time.Time
	pending  bool

	// Widgets
	launchBtn   widget.Clickable
	settingsBtn widget.Clickable

	// Callbacks
	onLaunch   func()
	onSettings func()
	onQuit     func()

	// Tests replace afterFunc to fire the launch synchronously.
	afterFunc func(time.Duration, func())
}

// New creates the main window. It is hidden until Show.
func New() *Window {
	w := &Window{
		afterFunc: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
	w.host = ui.NewHost(ui.Options{
		Title:  i18n.T("main_title"),
		Width:  unit.Dp(420),
		Height: unit.Dp(380),
		Fixed:  true,
	}, w.frame)
	return w
}

// OnLaunch sets the callback for the Launch button.
func (w *Window) OnLaunch(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onLaunch = fn
}

// OnSettings sets the callback for the Settings button.
func (w *Window) OnSettings(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onSettings = fn
}

// OnQuit sets the callback for ⌘Q. Closing the window does not call it.
func (w *Window) OnQuit(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onQuit = fn
}

// Show displays the window (non-blocking).
func (w *Window) Show() {
	w.host.SetTitle(i18n.T("main_title"))
	w.host.Show()
}

// Hide closes the window.
func (w *Window) Hide() {
	w.host.Hide()
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	return w.host.Visible()
}

// SetStatus updates the success / error banner.
func (w *Window) SetStatus(snap status.Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.snapshot = snap
}

// SetHotkey updates the hotkey shown in the footer.
func (w *Window) SetHotkey(hotkey string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hotkey = hotkey
}

func (w *Window) frame(gtx layout.Context) {
	w.handleEvents(gtx)
	w.draw(gtx)
}

func (w *Window) handleEvents(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(key.Filter{Name: "Q", Required: key.ModShortcut})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			w.quit()
		}
	}

	if w.launchBtn.Clicked(gtx) {
		w.press(time.Now())
	}

	if w.settingsBtn.Clicked(gtx) {
		w.mu.Lock()
		callback := w.onSettings
		w.mu.Unlock()
		if callback != nil {
			callback()
		}
	}
}

// press starts the press animation and schedules the launch after it. Clicks
// during the animation are ignored.
func (w *Window) press(now time.Time) {
	w.mu.Lock()
	if w.pending {
		w.mu.Unlock()
		return
	}
	w.pending = true
	w.pressAt = now
	after := w.afterFunc
	w.mu.Unlock()

	after(pressDuration, w.fire)
}

func (w *Window) fire() {
	w.mu.Lock()
	w.pending = false
	callback := w.onLaunch
	w.mu.Unlock()

	if callback != nil {
		callback()
	}
}

func (w *Window) quit() {
	w.mu.Lock()
	callback := w.onQuit
	w.mu.Unlock()

	w.host.Close()
	if callback != nil {
		callback()
	}
}

func (w *Window) getState() (status.Snapshot, string, time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot, w.hotkey, w.pressAt
}

// pressScale is the Launch button scale for the time elapsed since a click:
// it dips to 0.95 and springs back within pressDuration.
func pressScale(elapsed time.Duration) float32 {
	if elapsed < 0 || elapsed >= pressDuration {
		return 1
	}
	t := float32(elapsed) / float32(pressDuration)
	if t < 0.5 {
		return 1 - 0.1*t
	}
	return 0.95 + 0.1*(t-0.5)
}

// bannerText returns the banner message and whether it is an error.
func bannerText(snap status.Snapshot) (string, bool) {
	switch {
	case snap.Err != nil:
		return i18n.T("error_launch") + ": " + snap.Err.Error(), true
	case snap.Success:
		return i18n.T("main_success"), false
	default:
		return "", false
	}
}
