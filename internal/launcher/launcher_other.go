//go:build !darwin && !linux && !windows

package launcher

func defaultCommand() []string {
	return nil
}
