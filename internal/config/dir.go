// Package config resolves where ignorecat keeps its settings.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName = "ignorecat"

	// SettingsFile is the settings file name inside Dir.
	SettingsFile = "settings.yaml"

	// EnvConfigHome overrides the configuration directory.
	EnvConfigHome = "IGNORECAT_CONFIG_HOME"
)

// Dir returns the ignorecat configuration directory.
//
// Resolution:
//   - $IGNORECAT_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/ignorecat if set (on any platform)
//   - %AppData%/ignorecat on Windows
//   - ~/.config/ignorecat on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// SettingsPath returns the settings file path. An explicit path wins;
// otherwise the file lives in Dir. Returns "" when no directory resolves.
func SettingsPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, SettingsFile)
}
