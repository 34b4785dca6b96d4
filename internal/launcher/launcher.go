// Package launcher starts the operating system's screen saver.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"screensaver-launcher/internal/log"
)

// EnvCommand overrides the screen saver command, arguments separated by spaces.
const EnvCommand = "SSL_SCREENSAVER_CMD"

// ErrNoCommand is returned when no screen saver command is known for the platform.
var ErrNoCommand = errors.New("no screen saver command for this platform")

// Launcher starts the screen saver.
type Launcher interface {
	// Launch starts the screen saver and returns once the process is spawned.
	Launch(ctx context.Context) error
}

// Process launches the screen saver as an external process.
type Process struct {
	command []string
	start   func(cmd *exec.Cmd) error
}

// New creates a Process for command. An empty command selects the platform default.
func New(command []string) *Process {
	if len(command) == 0 {
		command = defaultCommand()
	}
	return &Process{
		command: slices.Clone(command),
		start:   startAndReap,
	}
}

// Resolve picks the command: EnvCommand, then the configured one, then nil
// (platform default).
func Resolve(configured []string) []string {
	if env := strings.Fields(os.Getenv(EnvCommand)); len(env) > 0 {
		return env
	}
	if len(configured) > 0 {
		return configured
	}
	return nil
}

// Command returns the command line that Launch runs.
func (p *Process) Command() []string {
	return slices.Clone(p.command)
}

// Launch spawns the screen saver without waiting for it to exit.
func (p *Process) Launch(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("launch screen saver: %w", err)
	}
	if len(p.command) == 0 {
		return fmt.Errorf("launch screen saver: %w", ErrNoCommand)
	}

	// Not CommandContext: the screen saver must outlive the caller's context.
	cmd := exec.Command(p.command[0], p.command[1:]...)
	if err := p.start(cmd); err != nil {
		return fmt.Errorf("launch screen saver: %w", err)
	}
	return nil
}

func startAndReap(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Warnf("launcher: %s exited: %v", cmd.Path, err)
		}
	}()
	return nil
}
