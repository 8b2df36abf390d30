package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// ChezmoiDirName is the directory chezmoi uses under the XDG roots
	ChezmoiDirName = "chezmoi"

	// ChezmoiConfigFile is the name of both the config file and its template
	ChezmoiConfigFile = "chezmoi.toml"

	// AppDirName is the directory for chezconf's own files
	AppDirName = "chezconf"

	// SettingsFileName is the name of chezconf's optional settings file
	SettingsFileName = "settings.toml"

	// LogFileName is the name of chezconf's log file
	LogFileName = "chezconf.log"
)

// DefaultConfigFile returns the chezmoi config file path.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, ChezmoiDirName, ChezmoiConfigFile)
}

// DefaultTemplateFile returns the chezmoi config template path.
func DefaultTemplateFile() string {
	return filepath.Join(xdg.DataHome, ChezmoiDirName, ChezmoiConfigFile)
}

// SettingsFile returns the path of chezconf's settings file.
func SettingsFile() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, SettingsFileName)
}

// LogFile returns the path of chezconf's log file under the XDG state directory.
func LogFile() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// Reload re-reads the XDG environment variables.
// Tests that change XDG_* with t.Setenv need this before calling the Default* helpers.
func Reload() {
	xdg.Reload()
}

// ExpandHome expands a leading ~ to the user's home directory.
// Paths of the form ~user are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
