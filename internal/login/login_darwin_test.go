//go:build darwin

package login

import (
	"os"
	"strings"
	"testing"
)

func TestEnableDisableDarwin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	origExe, origCtl := executable, launchctl
	t.Cleanup(func() { executable, launchctl = origExe, origCtl })

	executable = func() (string, error) { return "/Applications/SSL.app/Contents/MacOS/ssl", nil }
	var calls []string
	launchctl = func(args ...string) ([]byte, error) {
		calls = append(calls, args[0])
		return nil, nil
	}

	if err := Enable(); err != nil {
		t.Fatal(err)
	}
	if !Enabled() {
		t.Fatal("Enabled() = false after Enable")
	}
	data, err := os.ReadFile(plistPath())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<string>/Applications/SSL.app/Contents/MacOS/ssl</string>") {
		t.Errorf("plist missing program path:\n%s", data)
	}
	if strings.Join(calls, ",") != "bootout,bootstrap" {
		t.Errorf("launchctl calls = %v", calls)
	}

	if err := Disable(); err != nil {
		t.Fatal(err)
	}
	if Enabled() {
		t.Error("Enabled() = true after Disable")
	}
}
