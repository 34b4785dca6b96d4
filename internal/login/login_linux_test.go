//go:build linux

package login

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLinux(t *testing.T, exe string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	orig := executable
	executable = func() (string, error) { return exe, nil }
	t.Cleanup(func() { executable = orig })
	return filepath.Join(dir, "autostart", "screensaver-launcher.desktop")
}

func TestEnableDisableLinux(t *testing.T) {
	path := setupLinux(t, "/opt/ssl/screensaver-launcher")

	if Enabled() {
		t.Fatal("Enabled() = true before Enable")
	}
	if err := Enable(); err != nil {
		t.Fatal(err)
	}
	if !Enabled() {
		t.Fatal("Enabled() = false after Enable")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Exec=/opt/ssl/screensaver-launcher\n") {
		t.Errorf("desktop entry missing Exec line:\n%s", data)
	}

	if err := Disable(); err != nil {
		t.Fatal(err)
	}
	if Enabled() {
		t.Error("Enabled() = true after Disable")
	}
	if err := Disable(); err != nil {
		t.Errorf("second Disable: %v", err)
	}
}

func TestQuoteExec(t *testing.T) {
	tests := map[string]string{
		"/usr/bin/ssl":        "/usr/bin/ssl",
		"/home/a b/ssl":       `"/home/a b/ssl"`,
		`/home/x"y/$HOME/ssl`: `"/home/x\"y/\$HOME/ssl"`,
	}
	for in, want := range tests {
		if got := quoteExec(in); got != want {
			t.Errorf("quoteExec(%q) = %q, want %q", in, got, want)
		}
	}
}
