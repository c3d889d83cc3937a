package ports

import "linkreport/internal/domain"

// PresetStore persists the ordered preset list and global settings across
// sessions. The store is loaded at startup and saved on every edit.
type PresetStore interface {
	Load() ([]domain.PresetConfig, error)
	Save(presets []domain.PresetConfig) error

	// Verbose returns the diagnostic logging toggle, default enabled.
	Verbose() bool
	SetVerbose(v bool) error
}
