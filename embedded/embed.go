// Package embedded holds the bundled icons.
package embedded

import (
	_ "embed"
)

// IconIdle is the tray icon while ready.
//
//go:embed icon_idle.png
var IconIdle []byte

// IconLaunched is shown after a successful launch (green).
//
//go:embed icon_launched.png
var IconLaunched []byte

// IconFailed is shown after a failed launch (red).
//
//go:embed icon_failed.png
var IconFailed []byte
