//go:build linux

package launcher

func defaultCommand() []string {
	return []string{"xdg-screensaver", "activate"}
}
