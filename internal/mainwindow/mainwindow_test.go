package mainwindow

import (
	"errors"
	"testing"
	"time"

	"screensaver-launcher/internal/i18n"
	"screensaver-launcher/internal/status"
)

func TestPressScale(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float32
	}{
		{-1, 1},
		{0, 1},
		{pressDuration / 2, 0.95},
		{pressDuration, 1},
		{time.Second, 1},
	}
	for _, tt := range tests {
		got := pressScale(tt.elapsed)
		if diff := got - tt.want; diff > 0.001 || diff < -0.001 {
			t.Errorf("pressScale(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
	if s := pressScale(pressDuration / 4); s >= 1 || s <= 0.95 {
		t.Errorf("pressScale(quarter) = %v, want between 0.95 and 1", s)
	}
}

func TestBannerText(t *testing.T) {
	i18n.SetLanguage(i18n.EN)

	if text, _ := bannerText(status.Snapshot{}); text != "" {
		t.Errorf("idle banner = %q, want empty", text)
	}

	text, isErr := bannerText(status.Snapshot{Success: true})
	if text != "Screen saver started" || isErr {
		t.Errorf("success banner = %q, %v", text, isErr)
	}

	text, isErr = bannerText(status.Snapshot{Err: errors.New("exec: not found")})
	if text != "Launch failed: exec: not found" || !isErr {
		t.Errorf("error banner = %q, %v", text, isErr)
	}
}

func TestFooterHotkey(t *testing.T) {
	i18n.SetLanguage(i18n.EN)

	if got := footerHotkey("⌃⇧+L"); got != "Global hotkey: ⌃⇧+L" {
		t.Errorf("footerHotkey = %q", got)
	}
	if got := footerHotkey("broken"); got != "Global hotkey: ⌘⌥+S" {
		t.Errorf("footerHotkey(broken) = %q", got)
	}
}

func TestPressLaunchesAfterAnimation(t *testing.T) {
	w := New()

	var scheduled []func()
	var delays []time.Duration
	w.afterFunc = func(d time.Duration, fn func()) {
		delays = append(delays, d)
		scheduled = append(scheduled, fn)
	}

	launches := 0
	w.OnLaunch(func() { launches++ })

	w.press(time.Now())
	w.press(time.Now()) // ignored while the animation runs

	if len(scheduled) != 1 {
		t.Fatalf("scheduled %d launches, want 1", len(scheduled))
	}
	if delays[0] != pressDuration {
		t.Errorf("delay = %v, want %v", delays[0], pressDuration)
	}
	if launches != 0 {
		t.Fatal("launched before the animation finished")
	}

	scheduled[0]()
	if launches != 1 {
		t.Errorf("launches = %d, want 1", launches)
	}

	w.press(time.Now())
	if len(scheduled) != 2 {
		t.Errorf("press after launch not scheduled")
	}
}

func TestQuitCallsCallback(t *testing.T) {
	w := New()
	quit := false
	w.OnQuit(func() { quit = true })
	w.quit()
	if !quit {
		t.Error("onQuit not called")
	}
}
