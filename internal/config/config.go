// Package config stores the app preferences in a JSON file.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"

	"screensaver-launcher/internal/log"
)

const (
	appDirName = "ScreenSaverLauncher"
	fileName   = "config.json"
)

// configData is the on-disk form.
type configData struct {
	Hotkey        string   `json:"hotkey"`
	LaunchAtLogin bool     `json:"launch_at_login"`
	Notifications *bool    `json:"notifications,omitempty"`
	UILanguage    string   `json:"ui_language,omitempty"`
	Command       []string `json:"command,omitempty"`
}

// Config holds the app preferences.
type Config struct {
	mu            sync.RWMutex
	hotkey        string
	launchAtLogin bool
	notifications bool
	uiLanguage    string
	command       []string
	configPath    string

	onHotkeyChange        func(string)
	onLaunchAtLoginChange func(bool)
}

// DefaultPath returns <UserConfigDir>/ScreenSaverLauncher/config.json.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, appDirName, fileName), nil
}

// New loads the config from path, falling back to defaults.
// An empty path selects DefaultPath.
func New(path string) *Config {
	c := &Config{
		hotkey:        DefaultHotkey,
		notifications: true,
		uiLanguage:    "en",
	}

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			log.Warnf("config: %v, settings will not be saved", err)
		}
		path = p
	}
	c.configPath = path

	if err := c.load(); err != nil {
		log.Warnf("config: %v, using defaults", err)
	}
	return c
}

// Path returns the file the configuration is persisted to.
func (c *Config) Path() string {
	return c.configPath
}

// load reads the config file. Missing file is not an error.
func (c *Config) load() error {
	if c.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(c.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", c.configPath, err)
	}

	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", c.configPath, err)
	}

	if cfg.Hotkey != "" {
		c.hotkey = cfg.Hotkey
	}
	c.launchAtLogin = cfg.LaunchAtLogin
	if cfg.Notifications != nil {
		c.notifications = *cfg.Notifications
	}
	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
	c.command = cfg.Command
	return nil
}

// save writes the config file. Caller holds mu.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	notifications := c.notifications
	cfg := configData{
		Hotkey:        c.hotkey,
		LaunchAtLogin: c.launchAtLogin,
		Notifications: &notifications,
		UILanguage:    c.uiLanguage,
		Command:       c.command,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Errorf("config: marshal: %v", err)
		return
	}

	if err := atomicWrite(c.configPath, data); err != nil {
		log.Errorf("config: %v", err)
	}
}

// atomicWrite writes through a temp file and rename so readers never see a partial file.
func atomicWrite(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("save config: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config.json.tmp.*")
	if err != nil {
		return fmt.Errorf("save config: create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("save config: write: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save config: close: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("save config: rename: %w", err)
	}
	return nil
}

// Hotkey returns the hotkey string, e.g. "⌘⌥+S".
func (c *Config) Hotkey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hotkey
}

// Shortcut parses the stored hotkey string.
func (c *Config) Shortcut() (Shortcut, error) {
	return ParseShortcut(c.Hotkey())
}

// SetHotkey stores the hotkey and calls the OnHotkeyChange callback.
func (c *Config) SetHotkey(hotkey string) {
	c.mu.Lock()
	c.hotkey = hotkey
	callback := c.onHotkeyChange
	c.save()
	c.mu.Unlock()

	if callback != nil {
		callback(hotkey)
	}
}

// OnHotkeyChange sets the callback for hotkey changes.
func (c *Config) OnHotkeyChange(fn func(string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onHotkeyChange = fn
}

// LaunchAtLogin reports the stored launch-at-login flag.
func (c *Config) LaunchAtLogin() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.launchAtLogin
}

// SetLaunchAtLogin stores the flag and calls OnLaunchAtLoginChange.
func (c *Config) SetLaunchAtLogin(enabled bool) {
	c.mu.Lock()
	c.launchAtLogin = enabled
	callback := c.onLaunchAtLoginChange
	c.save()
	c.mu.Unlock()

	if callback != nil {
		callback(enabled)
	}
}

// OnLaunchAtLoginChange sets the callback fired after the flag changes.
func (c *Config) OnLaunchAtLoginChange(fn func(bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLaunchAtLoginChange = fn
}

// ToggleNotifications flips notifications and returns the new state.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	c.save()
	return c.notifications
}

// NotificationsEnabled reports whether notifications are on.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// UILanguage returns the interface language.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage stores the interface language.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	c.save()
}

// Command returns the screen saver command override, nil for the platform default.
func (c *Config) Command() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.command)
}

// Reload re-reads the file and fires change callbacks for values that differ.
func (c *Config) Reload() error {
	c.mu.Lock()
	oldHotkey, oldLogin := c.hotkey, c.launchAtLogin
	err := c.load()
	newHotkey, newLogin := c.hotkey, c.launchAtLogin
	onHotkey, onLogin := c.onHotkeyChange, c.onLaunchAtLoginChange
	c.mu.Unlock()

	if err != nil {
		return err
	}
	if newHotkey != oldHotkey && onHotkey != nil {
		onHotkey(newHotkey)
	}
	if newLogin != oldLogin && onLogin != nil {
		onLogin(newLogin)
	}
	return nil
}

// Watch reloads the configuration whenever the file is changed by another
// process. It blocks until ctx is done.
func (c *Config) Watch(ctx context.Context) error {
	if c.configPath == "" {
		return errors.New("watch config: no config path")
	}

	dir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("watch config: mkdir: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer w.Close()

	// Editors replace the file, so watch the directory.
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch config: add %s: %w", dir, err)
	}

	target := filepath.Clean(c.configPath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if err := c.Reload(); err != nil {
				log.Warnf("config: reload: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnf("config: watch: %v", err)
		}
	}
}
