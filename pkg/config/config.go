package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/chezconf/pkg/errors"
	"github.com/arthur-debert/chezconf/pkg/logging"
	"github.com/arthur-debert/chezconf/pkg/paths"
)

// EnvPrefix prefixes every environment variable chezconf reads.
const EnvPrefix = "CHEZCONF_"

// Setting keys
const (
	KeyConfigFile   = "config_file"
	KeyTemplateFile = "template_file"
	KeyNoColor      = "no_color"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Config holds the resolved settings for a run.
type Config struct {
	ConfigFile   string `koanf:"config_file"`
	TemplateFile string `koanf:"template_file"`
	NoColor      bool   `koanf:"no_color"`
}

// Load resolves settings from defaults, the settings file at settingsPath,
// the environment and flags. An empty settingsPath uses paths.SettingsFile.
// flags holds only the values the user actually passed.
func Load(settingsPath string, flags map[string]any) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}
	pathDefaults := map[string]interface{}{
		KeyConfigFile:   paths.DefaultConfigFile(),
		KeyTemplateFile: paths.DefaultTemplateFile(),
	}
	if err := k.Load(confmap.Provider(pathDefaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default paths")
	}

	// 2. Settings file, if present
	if settingsPath == "" {
		settingsPath = paths.SettingsFile()
	}
	if _, err := os.Stat(settingsPath); err == nil {
		logger.Debug().Str("path", settingsPath).Msg("Loading settings file")
		if err := k.Load(file.Provider(settingsPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load settings from %s", settingsPath).
				WithDetail("path", settingsPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access settings file %s", settingsPath).
			WithDetail("path", settingsPath)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	// 4. Flags
	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag settings")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid settings")
	}

	cfg.ConfigFile = paths.ExpandHome(cfg.ConfigFile)
	cfg.TemplateFile = paths.ExpandHome(cfg.TemplateFile)

	logger.Debug().
		Str("config_file", cfg.ConfigFile).
		Str("template_file", cfg.TemplateFile).
		Bool("no_color", cfg.NoColor).
		Msg("Settings resolved")

	return &cfg, nil
}
