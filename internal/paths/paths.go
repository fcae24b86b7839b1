// Package paths resolves configuration and data directory locations and
// names the data files kept inside the data directory.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative data directory used when no override is active. Matches the
// layout users see next to the binary: ./data/links.json etc.
const DefaultDataDirName = "data"

// Data file names inside the data directory.
const (
	LinksFile    = "links.json"
	UsersFile    = "users.json"
	EventsFile   = "events.json"
	UserUUIDFile = "user.uuid"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SHORTLINK_CONFIG_DIR"
	EnvDataDir   = "SHORTLINK_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/shortlink (fallback ~/.config/shortlink)
// macOS:   ~/Library/Application Support/shortlink
// Windows: %APPDATA%/shortlink
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "shortlink"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "shortlink"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "shortlink"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SHORTLINK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config file value > SHORTLINK_DATA_DIR env > $(CWD)/data.
//
// The CWD-relative default keeps all state next to where the tool is run,
// which suits a single-user CLI session.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// Links returns the path of the links file inside dataDir.
func Links(dataDir string) string { return filepath.Join(dataDir, LinksFile) }

// Users returns the path of the users file inside dataDir.
func Users(dataDir string) string { return filepath.Join(dataDir, UsersFile) }

// Events returns the path of the events file inside dataDir.
func Events(dataDir string) string { return filepath.Join(dataDir, EventsFile) }

// UserUUID returns the path of the current-user identity file inside dataDir.
func UserUUID(dataDir string) string { return filepath.Join(dataDir, UserUUIDFile) }
