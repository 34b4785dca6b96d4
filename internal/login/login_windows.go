//go:build windows

package login

import (
	"fmt"
	"os/exec"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

// Enabled reports whether the Run registry value exists.
func Enabled() bool {
	return exec.Command("reg", "query", runKey, "/v", appName).Run() == nil
}

// Enable adds the app to the current user's Run key.
func Enable() error {
	exe, err := executable()
	if err != nil {
		return err
	}
	out, err := exec.Command("reg", "add", runKey, "/v", appName, "/t", "REG_SZ", "/d", `"`+exe+`"`, "/f").CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg add: %w (%s)", err, out)
	}
	return nil
}

// Disable removes the Run registry value.
func Disable() error {
	if !Enabled() {
		return nil
	}
	out, err := exec.Command("reg", "delete", runKey, "/v", appName, "/f").CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg delete: %w (%s)", err, out)
	}
	return nil
}
