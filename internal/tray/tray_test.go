package tray

import (
	"testing"

	"screensaver-launcher/internal/i18n"
)

func TestLaunchTitle(t *testing.T) {
	i18n.SetLanguage(i18n.EN)

	if got := launchTitle(""); got != "Start Screen Saver" {
		t.Errorf("launchTitle(\"\") = %q", got)
	}
	if got := launchTitle("⌘⌥+S"); got != "Start Screen Saver    ⌘⌥+S" {
		t.Errorf("launchTitle(⌘⌥+S) = %q", got)
	}
}

func TestStatusTitleFollowsLanguage(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage(i18n.EN) })

	tr := New(Callbacks{}, Options{})
	tr.state = StateFailed

	i18n.SetLanguage(i18n.EN)
	en := tr.statusTitle()
	if en != i18n.T("tray_failed") {
		t.Errorf("statusTitle() = %q", en)
	}

	i18n.SetLanguage(i18n.ZH)
	if got := tr.statusTitle(); got != i18n.T("tray_failed") || got == en {
		t.Errorf("statusTitle() after switch = %q", got)
	}
	if got := tr.statusTitle(); got == i18n.T("tray_ready") {
		t.Error("language switch reset the status to ready")
	}
}
