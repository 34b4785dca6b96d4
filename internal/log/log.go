// Package log is the application's diagnostic logger.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const fileName = "screensaver-launcher.log"

var (
	logger  = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	logFile *os.File
	logMu   sync.Mutex
	dir     string
)

// ResolveDir picks the log directory: flag, then SSL_LOG_DIR, then the OS default.
func ResolveDir(flagPath string) (string, error) {
	for _, p := range []string{flagPath, os.Getenv("SSL_LOG_DIR")} {
		if p == "" {
			continue
		}
		if filepath.IsAbs(p) {
			return p, nil
		}
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(wd, p), nil
	}
	return defaultDir()
}

func defaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "ScreenSaverLauncher", "logs"), nil
}

// ParseLevel maps a level name to zerolog; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(s))
}

// Init starts writing to stderr and to the log file inside d.
func Init(d string, level zerolog.Level) error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := os.MkdirAll(d, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(d, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	dir = d

	setOutput(io.MultiWriter(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"},
		zerolog.ConsoleWriter{Out: f, TimeFormat: "2006-01-02 15:04:05", NoColor: true},
	), level)
	return nil
}

// SetOutput redirects the logger, used by tests.
func SetOutput(w io.Writer, level zerolog.Level) {
	logMu.Lock()
	defer logMu.Unlock()
	setOutput(w, level)
}

func setOutput(w io.Writer, level zerolog.Level) {
	logger = zerolog.New(w).Level(level).With().Timestamp().Int("pid", os.Getpid()).Logger()
}

// Dir returns the directory passed to Init.
func Dir() string {
	logMu.Lock()
	defer logMu.Unlock()
	return dir
}

// Close closes the log file. Safe to call more than once.
func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	setOutput(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, logger.GetLevel())
}

func current() *zerolog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	l := logger
	return &l
}

func Debugf(format string, args ...any) {
	current().Debug().Msg(fmt.Sprintf(format, args...))
}

func Info(msg string) {
	current().Info().Msg(msg)
}

func Infof(format string, args ...any) {
	current().Info().Msg(fmt.Sprintf(format, args...))
}

func Warn(msg string) {
	current().Warn().Msg(msg)
}

func Warnf(format string, args ...any) {
	current().Warn().Msg(fmt.Sprintf(format, args...))
}

func Error(msg string) {
	current().Error().Msg(msg)
}

func Errorf(format string, args ...any) {
	current().Error().Msg(fmt.Sprintf(format, args...))
}

// Launch records a screen saver launch attempt.
func Launch(trigger string, err error) {
	l := current()
	var ev *zerolog.Event
	if err != nil {
		ev = l.Error().Err(err)
	} else {
		ev = l.Info()
	}
	ev.Str("trigger", trigger).Bool("ok", err == nil).Msg("launch")
}

// Hotkey records a hotkey registration attempt.
func Hotkey(hotkey string, err error) {
	l := current()
	var ev *zerolog.Event
	if err != nil {
		ev = l.Warn().Err(err)
	} else {
		ev = l.Info()
	}
	ev.Str("hotkey", hotkey).Bool("registered", err == nil).Msg("hotkey")
}
