// Package store loads and saves the chezmoi config file.
package store

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/chezconf/pkg/document"
	chezerrors "github.com/arthur-debert/chezconf/pkg/errors"
	"github.com/arthur-debert/chezconf/pkg/logging"
	"github.com/arthur-debert/chezconf/pkg/types"
)

const (
	// ConfigFileMode is forced on the config file after every write.
	ConfigFileMode fs.FileMode = 0600

	// ConfigDirMode is used when creating the config directory.
	ConfigDirMode fs.FileMode = 0755
)

// Source tells where a loaded document came from.
type Source int

const (
	// SourceConfig means the config file existed and was parsed.
	SourceConfig Source = iota
	// SourceTemplate means the template was parsed and copied to the config path.
	SourceTemplate
	// SourceEmpty means neither file existed.
	SourceEmpty
)

func (s Source) String() string {
	switch s {
	case SourceConfig:
		return "config"
	case SourceTemplate:
		return "template"
	case SourceEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Store reads and writes one config file, seeding it from a template.
type Store struct {
	fs           types.FS
	configPath   string
	templatePath string
}

// New creates a store for the given config and template paths.
func New(fsys types.FS, configPath, templatePath string) *Store {
	return &Store{
		fs:           fsys,
		configPath:   configPath,
		templatePath: templatePath,
	}
}

// ConfigPath returns the path of the managed config file.
func (s *Store) ConfigPath() string {
	return s.configPath
}

// Load returns the config document. A missing config is seeded from the
// template, which is written to the config path; with no template the
// document starts empty. Malformed files are CONFIG_PARSE errors.
func (s *Store) Load() (*document.Table, Source, error) {
	logger := logging.GetLogger("store")

	path, source, err := s.locate()
	if err != nil {
		return nil, 0, err
	}

	switch source {
	case SourceEmpty:
		logger.Info().Str("template", s.templatePath).Msg("No config or template found, starting empty")
		return document.New(), SourceEmpty, nil
	case SourceTemplate:
		doc, err := s.read(path)
		if err != nil {
			return nil, 0, err
		}
		if err := s.write(doc); err != nil {
			return nil, 0, err
		}
		logger.Info().
			Str("template", path).
			Str("path", s.configPath).
			Msg("Copied template to configuration file")
		return doc, SourceTemplate, nil
	default:
		doc, err := s.read(path)
		if err != nil {
			return nil, 0, err
		}
		logger.Info().Str("path", path).Msg("Loaded existing configuration")
		return doc, SourceConfig, nil
	}
}

// Preview is Load without side effects: a template is parsed but not copied.
func (s *Store) Preview() (*document.Table, Source, error) {
	path, source, err := s.locate()
	if err != nil {
		return nil, 0, err
	}
	if source == SourceEmpty {
		return document.New(), SourceEmpty, nil
	}
	doc, err := s.read(path)
	if err != nil {
		return nil, 0, err
	}
	return doc, source, nil
}

// Save overwrites the config file with doc and forces owner-only permissions,
// even when the file already existed with a broader mode.
func (s *Store) Save(doc *document.Table) error {
	logger := logging.GetLogger("store")
	done := logging.LogOperationStart(logger, "save")
	defer done()

	return s.write(doc)
}

func (s *Store) locate() (string, Source, error) {
	ok, err := s.exists(s.configPath)
	if err != nil {
		return "", 0, err
	}
	if ok {
		return s.configPath, SourceConfig, nil
	}
	if s.templatePath == "" {
		return "", SourceEmpty, nil
	}
	ok, err = s.exists(s.templatePath)
	if err != nil {
		return "", 0, err
	}
	if ok {
		return s.templatePath, SourceTemplate, nil
	}
	return "", SourceEmpty, nil
}

func (s *Store) write(doc *document.Table) error {
	data, err := document.Marshal(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.configPath)
	if err := s.fs.MkdirAll(dir, ConfigDirMode); err != nil {
		return chezerrors.Wrapf(err, chezerrors.ErrDirCreate, "cannot create config directory %s", dir).
			WithDetail("path", dir)
	}

	if err := s.fs.WriteFile(s.configPath, data, ConfigFileMode); err != nil {
		return chezerrors.Wrapf(err, chezerrors.ErrFileWrite, "cannot write %s", s.configPath).
			WithDetail("path", s.configPath)
	}

	if err := s.fs.Chmod(s.configPath, ConfigFileMode); err != nil {
		return chezerrors.Wrapf(err, chezerrors.ErrPermission, "cannot restrict permissions on %s", s.configPath).
			WithDetail("path", s.configPath).
			WithDetail("mode", ConfigFileMode.String())
	}
	return nil
}

func (s *Store) read(path string) (*document.Table, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, chezerrors.Wrapf(err, chezerrors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}
	doc, err := document.Parse(data)
	if err != nil {
		return nil, chezerrors.Wrapf(err, chezerrors.ErrConfigParse, "cannot parse %s", path).
			WithDetail("path", path)
	}
	return doc, nil
}

func (s *Store) exists(path string) (bool, error) {
	_, err := s.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, chezerrors.Wrapf(err, chezerrors.ErrFileAccess, "cannot stat %s", path).
		WithDetail("path", path)
}
