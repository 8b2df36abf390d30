package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chezconf/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	configHome := t.TempDir()
	dataHome := t.TempDir()
	stateHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	paths.Reload()
	t.Cleanup(paths.Reload)

	assert.Equal(t, filepath.Join(configHome, "chezmoi", "chezmoi.toml"), paths.DefaultConfigFile())
	assert.Equal(t, filepath.Join(dataHome, "chezmoi", "chezmoi.toml"), paths.DefaultTemplateFile())
	assert.Equal(t, filepath.Join(configHome, "chezconf", "settings.toml"), paths.SettingsFile())
	assert.Equal(t, filepath.Join(stateHome, "chezconf", "chezconf.log"), paths.LogFile())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/chezmoi.toml", "/etc/chezmoi.toml"},
		{"relative", "chezmoi.toml", "chezmoi.toml"},
		{"tilde only", "~", home},
		{"tilde slash", "~/.config/chezmoi/chezmoi.toml", filepath.Join(home, ".config", "chezmoi", "chezmoi.toml")},
		{"other user", "~bob/x", "~bob/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.in))
		})
	}
}
