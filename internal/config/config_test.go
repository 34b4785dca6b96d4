package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestConfig(t *testing.T) (*Config, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	return New(path), path
}

func TestDefaults(t *testing.T) {
	c, path := newTestConfig(t)

	if c.Hotkey() != DefaultHotkey {
		t.Errorf("Hotkey() = %q, want %q", c.Hotkey(), DefaultHotkey)
	}
	if c.LaunchAtLogin() {
		t.Error("LaunchAtLogin() = true, want false")
	}
	if !c.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = false, want true")
	}
	if c.UILanguage() != "en" {
		t.Errorf("UILanguage() = %q, want en", c.UILanguage())
	}
	if c.Command() != nil {
		t.Errorf("Command() = %v, want nil", c.Command())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("defaults must not create the file")
	}
}

func TestPersistAndReload(t *testing.T) {
	c, path := newTestConfig(t)
	c.SetHotkey("⌃⇧+L")
	c.SetLaunchAtLogin(true)
	c.ToggleNotifications()
	c.SetUILanguage("zh")

	again := New(path)
	if again.Hotkey() != "⌃⇧+L" {
		t.Errorf("Hotkey() = %q, want ⌃⇧+L", again.Hotkey())
	}
	if !again.LaunchAtLogin() {
		t.Error("LaunchAtLogin not persisted")
	}
	if again.NotificationsEnabled() {
		t.Error("notifications toggle not persisted")
	}
	if again.UILanguage() != "zh" {
		t.Errorf("UILanguage() = %q, want zh", again.UILanguage())
	}
	sc, err := again.Shortcut()
	if err != nil || sc != (Shortcut{ModControl | ModShift, KeyL}) {
		t.Errorf("Shortcut() = %+v, %v", sc, err)
	}
}

func TestCorruptFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	c := New(path)
	if c.Hotkey() != DefaultHotkey {
		t.Errorf("Hotkey() = %q, want default", c.Hotkey())
	}
}

func TestCommandOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"hotkey":"⌘+F1","command":["xset","s","activate"]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	c := New(path)
	cmd := c.Command()
	if len(cmd) != 3 || cmd[0] != "xset" {
		t.Fatalf("Command() = %v", cmd)
	}
	cmd[0] = "mutated"
	if c.Command()[0] != "xset" {
		t.Error("Command() must return a copy")
	}
}

func TestSetHotkeyCallback(t *testing.T) {
	c, _ := newTestConfig(t)
	var got string
	c.OnHotkeyChange(func(s string) { got = s })
	c.SetHotkey("⌥+9")
	if got != "⌥+9" {
		t.Errorf("callback got %q, want ⌥+9", got)
	}
}

func TestReloadFiresOnChange(t *testing.T) {
	c, path := newTestConfig(t)
	c.SetHotkey("⌘+A")

	var hotkeys []string
	var logins []bool
	c.OnHotkeyChange(func(s string) { hotkeys = append(hotkeys, s) })
	c.OnLaunchAtLoginChange(func(b bool) { logins = append(logins, b) })

	// Unchanged file: no callbacks.
	if err := c.Reload(); err != nil {
		t.Fatal(err)
	}
	if len(hotkeys) != 0 || len(logins) != 0 {
		t.Fatalf("unexpected callbacks: %v %v", hotkeys, logins)
	}

	if err := os.WriteFile(path, []byte(`{"hotkey":"⌘+B","launch_at_login":true}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := c.Reload(); err != nil {
		t.Fatal(err)
	}
	if len(hotkeys) != 1 || hotkeys[0] != "⌘+B" {
		t.Errorf("hotkey callbacks = %v", hotkeys)
	}
	if len(logins) != 1 || !logins[0] {
		t.Errorf("login callbacks = %v", logins)
	}
}

func TestWatchReloadsExternalEdit(t *testing.T) {
	c, path := newTestConfig(t)
	c.SetHotkey("⌘+A")

	changed := make(chan string, 4)
	c.OnHotkeyChange(func(s string) { changed <- s })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Watch(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to start.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`{"hotkey":"⌃+F2"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if got != "⌃+F2" {
			t.Errorf("callback got %q, want ⌃+F2", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not reload the file")
	}
}
