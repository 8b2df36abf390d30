package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chezconf/pkg/document"
	"github.com/arthur-debert/chezconf/pkg/filesystem"
	"github.com/arthur-debert/chezconf/pkg/paths"
	"github.com/arthur-debert/chezconf/pkg/store"
	"github.com/arthur-debert/chezconf/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// chezconfEnvVars are cleared so the host environment cannot leak into tests.
var chezconfEnvVars = []string{
	"CHEZCONF_CONFIG_FILE",
	"CHEZCONF_TEMPLATE_FILE",
	"CHEZCONF_NO_COLOR",
}

// TestEnvironment provides an isolated home and XDG layout
type TestEnvironment struct {
	// Core paths
	HomeDir   string
	XDGConfig string
	XDGData   string
	XDGState  string

	// chezmoi files as resolved from the XDG layout
	ConfigFile   string
	TemplateFile string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment and points HOME and the
// XDG variables at it for the duration of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	var root string
	switch envType {
	case EnvMemoryOnly:
		root = "/virtual"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	env.HomeDir = filepath.Join(root, "home")
	env.XDGConfig = filepath.Join(env.HomeDir, ".config")
	env.XDGData = filepath.Join(env.HomeDir, ".local", "share")
	env.XDGState = filepath.Join(env.HomeDir, ".local", "state")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.XDGConfig)
	t.Setenv("XDG_DATA_HOME", env.XDGData)
	if envType == EnvIsolated {
		t.Setenv("XDG_STATE_HOME", env.XDGState)
	}
	for _, name := range chezconfEnvVars {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}

	paths.Reload()
	t.Cleanup(paths.Reload)

	env.ConfigFile = paths.DefaultConfigFile()
	env.TemplateFile = paths.DefaultTemplateFile()

	_ = env.FS.MkdirAll(env.HomeDir, 0755)

	return env
}

// WithConfig writes content to the chezmoi config file
func (env *TestEnvironment) WithConfig(content string) *TestEnvironment {
	env.t.Helper()
	env.WriteFile(env.ConfigFile, content)
	return env
}

// WithTemplate writes content to the chezmoi config template
func (env *TestEnvironment) WithTemplate(content string) *TestEnvironment {
	env.t.Helper()
	env.WriteFile(env.TemplateFile, content)
	return env
}

// WriteFile writes content to path, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// ReadConfig parses the saved chezmoi config file
func (env *TestEnvironment) ReadConfig() *document.Table {
	env.t.Helper()
	data, err := env.FS.ReadFile(env.ConfigFile)
	if err != nil {
		env.t.Fatalf("Failed to read config: %v", err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		env.t.Fatalf("Failed to parse config: %v", err)
	}
	return doc
}

// Store returns a store over the environment's filesystem and chezmoi paths
func (env *TestEnvironment) Store() *store.Store {
	return store.New(env.FS, env.ConfigFile, env.TemplateFile)
}
