package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/ssl-log")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/ssl-log" {
		t.Errorf("got %q, want /tmp/ssl-log", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(wd, "logs"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("SSL_LOG_DIR", "/tmp/ssl-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/ssl-env-log" {
		t.Errorf("got %q, want /tmp/ssl-env-log", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitCreatesFile(t *testing.T) {
	tmp := t.TempDir()
	t.Cleanup(Close)

	if err := Init(tmp, zerolog.InfoLevel); err != nil {
		t.Fatal(err)
	}
	Info("hello")

	data, err := os.ReadFile(filepath.Join(tmp, fileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message, got: %q", data)
	}
	if Dir() != tmp {
		t.Errorf("Dir() = %q, want %q", Dir(), tmp)
	}
}

func TestLaunchFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)
	t.Cleanup(Close)

	Launch("hotkey", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{`"trigger":"hotkey"`, `"ok":false`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.WarnLevel)
	t.Cleanup(Close)

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	if strings.Contains(buf.String(), "quiet") {
		t.Error("info message written at warn level")
	}
	if !strings.Contains(buf.String(), "loud 2") {
		t.Error("warn message missing")
	}
}

func TestCloseIdempotent(t *testing.T) {
	if err := Init(t.TempDir(), zerolog.InfoLevel); err != nil {
		t.Fatal(err)
	}
	Close()
	Close()
}
