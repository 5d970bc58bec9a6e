// Package paths resolves the configuration and data directories used by the
// enumstatus CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user directories.
const AppName = "enumstatus"

// DefaultDataDirName is the CWD-relative data directory used when nothing
// else is configured.
const DefaultDataDirName = ".enumstatus-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ENUMSTATUS_CONFIG_DIR"
	EnvDataDir   = "ENUMSTATUS_DATA_DIR"
)

// platformDir holds platform lookups that tests can override.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/enumstatus (fallback ~/.config/enumstatus)
// macOS:   ~/Library/Application Support/enumstatus
// Windows: %APPDATA%/enumstatus
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

func xdgDir(env, homeFallback string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeFallback, AppName), nil
}

// ResolveConfigDir returns the configuration directory: flag, then
// ENUMSTATUS_CONFIG_DIR, then DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory: flag, then the config file
// value, then ENUMSTATUS_DATA_DIR, then $(CWD)/.enumstatus-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, candidate := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if candidate != "" {
			return filepath.Abs(candidate)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
