//go:build darwin

package launcher

func defaultCommand() []string {
	return []string{"/usr/bin/open", "-a", "ScreenSaverEngine"}
}
