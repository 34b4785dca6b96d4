// Package notify sends desktop notifications.
package notify

import (
	"sync/atomic"

	"github.com/gen2brain/beeep"

	"screensaver-launcher/internal/i18n"
	"screensaver-launcher/internal/log"
)

const maxErrorRunes = 100

// Notifier sends desktop notifications while enabled.
type Notifier struct {
	enabled atomic.Bool
	send    func(title, message string) error
}

// New creates a Notifier.
func New(enabled bool) *Notifier {
	n := &Notifier{
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
	n.enabled.Store(enabled)
	return n
}

// SetEnabled turns notifications on or off.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// Launched confirms that the screen saver was started.
func (n *Notifier) Launched() {
	n.notify("", i18n.T("notify_launched"))
}

// LoginEnabled tells the user the app now starts at login.
func (n *Notifier) LoginEnabled() {
	n.notify(i18n.T("notify_login_enabled"), i18n.T("notify_login_enabled_msg"))
}

// Error shows an error notification.
func (n *Notifier) Error(msg string) {
	// Cut on runes, notification servers drop invalid UTF-8.
	if r := []rune(msg); len(r) > maxErrorRunes {
		msg = string(r[:maxErrorRunes]) + "..."
	}
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled.Load() {
		return
	}
	appName := i18n.T("app_name")
	if title != "" {
		title = appName + ": " + title
	} else {
		title = appName
	}
	// Notification errors are not fatal
	if err := n.send(title, message); err != nil {
		log.Debugf("notify: %v", err)
	}
}
