package common

import (
	"os"
	"path/filepath"
)

// AppName names the per-user config and cache directories.
const AppName = "dit"

// ConfigDir is $XDG_CONFIG_HOME/dit, falling back to ~/.config/dit.
func ConfigDir() string {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// CacheDir is $XDG_CACHE_HOME/dit, falling back to ~/.cache/dit.
func CacheDir() string {
	return appDir("XDG_CACHE_HOME", ".cache")
}

// ScreenLogPath is where the screen logs while it owns the terminal.
func ScreenLogPath() string {
	return filepath.Join(CacheDir(), "screen.log")
}

// appDir resolves a base directory variable from
// https://specifications.freedesktop.org/basedir/latest/#variables and
// appends AppName. An unset or relative variable means the home default.
func appDir(env, homeDefault string) string {
	base := os.Getenv(env)
	if base == "" || !filepath.IsAbs(base) {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, homeDefault)
	}
	return filepath.Join(base, AppName)
}
