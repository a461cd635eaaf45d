package common

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputs_Args(t *testing.T) {
	inputs, err := ReadInputs([]string{"hello", "world"}, strings.NewReader("ignored\n"))
	if err != nil {
		t.Fatalf("ReadInputs returned error: %v", err)
	}
	if len(inputs) != 1 || inputs[0] != "hello world" {
		t.Errorf("ReadInputs = %q, want [\"hello world\"]", inputs)
	}
}

func TestReadInputs_Stdin(t *testing.T) {
	inputs, err := ReadInputs(nil, strings.NewReader("sos\n\nhello\n"))
	if err != nil {
		t.Fatalf("ReadInputs returned error: %v", err)
	}
	expected := []string{"sos", "", "hello"}
	if strings.Join(inputs, "|") != strings.Join(expected, "|") {
		t.Errorf("ReadInputs = %q, want %q", inputs, expected)
	}
}

func TestReadInputs_EmptyStdin(t *testing.T) {
	inputs, err := ReadInputs(nil, strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadInputs returned error: %v", err)
	}
	if len(inputs) != 0 {
		t.Errorf("ReadInputs = %q, want none", inputs)
	}
}

func TestCacheDir_XDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	if got := CacheDir(); got != filepath.Join("/tmp/xdg-cache", "dit") {
		t.Errorf("CacheDir() = %q", got)
	}
	if got := ScreenLogPath(); got != filepath.Join("/tmp/xdg-cache", "dit", "screen.log") {
		t.Errorf("ScreenLogPath() = %q", got)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg-config", "dit") {
		t.Errorf("ConfigDir() = %q", got)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	tests := []struct {
		env  string
		want string
	}{
		{"", filepath.Join(home, ".config", "dit")},
		{"relative/dir", filepath.Join(home, ".config", "dit")},
	}
	for _, tt := range tests {
		t.Setenv("XDG_CONFIG_HOME", tt.env)
		if got := ConfigDir(); got != tt.want {
			t.Errorf("ConfigDir() with XDG_CONFIG_HOME=%q = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestCacheDir_Fallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", "")
	if got := CacheDir(); got != filepath.Join(home, ".cache", "dit") {
		t.Errorf("CacheDir() = %q", got)
	}
}

func TestSetupLogging_File(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "logs", "dit.log")
	closeLog, err := SetupLogging(slog.LevelInfo, path)
	if err != nil {
		t.Fatalf("SetupLogging failed: %v", err)
	}

	slog.Debug("hidden")
	slog.Info("playback started", "run", "abc")
	if err := closeLog(); err != nil {
		t.Fatalf("closing log failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "playback started") || !strings.Contains(out, "run=abc") {
		t.Errorf("log missing entry: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry logged at info level: %q", out)
	}
}
