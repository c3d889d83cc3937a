package presetstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"linkreport/internal/domain"
	"linkreport/internal/ports"
)

const (
	presetsKey = "presets"
	verboseKey = "verbose"
)

// Store persists presets and global settings in a viper-managed YAML file.
type Store struct {
	v    *viper.Viper
	path string
}

// Ensure Store implements PresetStore
var _ ports.PresetStore = (*Store)(nil)

// New creates a store backed by the given settings file. The file does not
// need to exist yet; it is created on first save.
func New(path string) *Store {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(verboseKey, true)
	return &Store{v: v, path: path}
}

// Load reads the preset list from disk. A missing settings file yields an
// empty list, not an error.
func (s *Store) Load() ([]domain.PresetConfig, error) {
	if err := s.read(); err != nil {
		return nil, err
	}

	var presets []domain.PresetConfig
	if err := s.v.UnmarshalKey(presetsKey, &presets); err != nil {
		return nil, fmt.Errorf("failed to decode presets: %w", err)
	}
	return presets, nil
}

// Save writes the full preset list back to the settings file, creating the
// parent directory if needed.
func (s *Store) Save(presets []domain.PresetConfig) error {
	s.v.Set(presetsKey, presets)
	return s.write()
}

// Verbose returns the diagnostic logging toggle, default enabled.
func (s *Store) Verbose() bool {
	s.read()
	return s.v.GetBool(verboseKey)
}

// SetVerbose updates and persists the diagnostic logging toggle.
func (s *Store) SetVerbose(verbose bool) error {
	s.v.Set(verboseKey, verbose)
	return s.write()
}

func (s *Store) read() error {
	err := s.v.ReadInConfig()
	if err == nil {
		return nil
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || os.IsNotExist(err) {
		return nil // not created yet
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read settings: %w", err)
}

func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
