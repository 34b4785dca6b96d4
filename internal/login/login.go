// Package login registers the application to start when the user logs in.
package login

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Label identifies the login item on every platform.
	Label   = "io.github.screensaver-launcher"
	appName = "ScreenSaverLauncher"
)

// executable is replaced in tests.
var executable = func() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}
