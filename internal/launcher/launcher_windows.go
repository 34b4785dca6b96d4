//go:build windows

package launcher

import (
	"os"
	"path/filepath"
)

func defaultCommand() []string {
	root := os.Getenv("SystemRoot")
	if root == "" {
		root = `C:\Windows`
	}
	return []string{filepath.Join(root, "System32", "scrnsave.scr"), "/s"}
}
