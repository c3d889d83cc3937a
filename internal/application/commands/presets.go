package commands

import (
	"context"
	"fmt"

	"linkreport/internal/application"
	"linkreport/internal/domain"
	"linkreport/internal/ports"
)

// PresetResult contains the outcome of a preset mutation.
type PresetResult struct {
	Preset  domain.PresetConfig
	Message string
}

// AddPresetCommand creates a new preset with default options.
type AddPresetCommand struct {
	store ports.PresetStore
	Name  string
}

// NewAddPresetCommand creates a new AddPresetCommand
func NewAddPresetCommand(store ports.PresetStore, name string) *AddPresetCommand {
	return &AddPresetCommand{store: store, Name: name}
}

// Validate checks if the add operation is valid
func (c *AddPresetCommand) Validate() error {
	if c.Name == "" {
		return &application.ValidationError{Field: "name", Message: "preset name is required"}
	}
	return nil
}

// Execute runs the add preset command
func (c *AddPresetCommand) Execute(ctx context.Context) (*PresetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	presets, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}
	if _, ok := domain.FindPreset(presets, c.Name); ok {
		return nil, fmt.Errorf("%q: %w", c.Name, application.ErrPresetExists)
	}

	preset := domain.DefaultPreset(c.Name)
	presets = append(presets, preset)
	if err := c.store.Save(presets); err != nil {
		return nil, fmt.Errorf("saving presets: %w", err)
	}

	return &PresetResult{
		Preset:  preset,
		Message: fmt.Sprintf("Added preset %q (output: %s)", preset.Name, preset.OutputPath),
	}, nil
}

// DeletePresetCommand removes a preset by name.
type DeletePresetCommand struct {
	store ports.PresetStore
	Name  string
}

// NewDeletePresetCommand creates a new DeletePresetCommand
func NewDeletePresetCommand(store ports.PresetStore, name string) *DeletePresetCommand {
	return &DeletePresetCommand{store: store, Name: name}
}

// Execute runs the delete preset command
func (c *DeletePresetCommand) Execute(ctx context.Context) (*PresetResult, error) {
	presets, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}

	kept := presets[:0:0]
	var removed domain.PresetConfig
	found := false
	for _, p := range presets {
		if p.Name == c.Name {
			removed = p
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return nil, fmt.Errorf("%q: %w", c.Name, application.ErrPresetNotFound)
	}

	if err := c.store.Save(kept); err != nil {
		return nil, fmt.Errorf("saving presets: %w", err)
	}

	return &PresetResult{
		Preset:  removed,
		Message: fmt.Sprintf("Deleted preset %q", removed.Name),
	}, nil
}

// EditPresetCommand replaces a preset's configuration, matched by name.
type EditPresetCommand struct {
	store  ports.PresetStore
	Preset domain.PresetConfig
}

// NewEditPresetCommand creates a new EditPresetCommand
func NewEditPresetCommand(store ports.PresetStore, preset domain.PresetConfig) *EditPresetCommand {
	return &EditPresetCommand{store: store, Preset: preset}
}

// Validate checks if the edit operation is valid
func (c *EditPresetCommand) Validate() error {
	if c.Preset.Name == "" {
		return &application.ValidationError{Field: "name", Message: "preset name is required"}
	}
	if c.Preset.OutputPath == "" {
		return &application.ValidationError{Field: "output_path", Message: "output path is required"}
	}
	return nil
}

// Execute runs the edit preset command
func (c *EditPresetCommand) Execute(ctx context.Context) (*PresetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	presets, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}

	found := false
	for i, p := range presets {
		if p.Name == c.Preset.Name {
			presets[i] = c.Preset
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%q: %w", c.Preset.Name, application.ErrPresetNotFound)
	}

	if err := c.store.Save(presets); err != nil {
		return nil, fmt.Errorf("saving presets: %w", err)
	}

	return &PresetResult{
		Preset:  c.Preset,
		Message: fmt.Sprintf("Updated preset %q", c.Preset.Name),
	}, nil
}
