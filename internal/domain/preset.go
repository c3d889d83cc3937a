package domain

// PresetConfig is a named bundle of filtering and formatting options defining
// one report command. Presets are plain records; the ordered preset list plus
// the global verbose toggle is the full persisted state.
type PresetConfig struct {
	Name                string   `mapstructure:"name" yaml:"name"`
	OutputPath          string   `mapstructure:"output_path" yaml:"output_path"`
	IncludeEmbeds       bool     `mapstructure:"include_embeds" yaml:"include_embeds"`
	NonexistentOnly     bool     `mapstructure:"nonexistent_only" yaml:"nonexistent_only"`
	SortAlphabetical    bool     `mapstructure:"sort_alphabetical" yaml:"sort_alphabetical"`
	LinkToFiles         bool     `mapstructure:"link_to_files" yaml:"link_to_files"`
	ExcludeFromFilename []string `mapstructure:"exclude_from_filename" yaml:"exclude_from_filename"`
	ExcludeFromGlob     []string `mapstructure:"exclude_from_glob" yaml:"exclude_from_glob"`
	ExcludeToFilename   []string `mapstructure:"exclude_to_filename" yaml:"exclude_to_filename"`
	ExcludeToGlob       []string `mapstructure:"exclude_to_glob" yaml:"exclude_to_glob"`
}

// DefaultPreset returns a new preset with default options.
func DefaultPreset(name string) PresetConfig {
	return PresetConfig{
		Name:        name,
		OutputPath:  name + " links.md",
		LinkToFiles: true,
	}
}

// FindPreset returns the preset with the given name.
func FindPreset(presets []PresetConfig, name string) (PresetConfig, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return PresetConfig{}, false
}

// OutputNotePath returns the preset's output path normalized with a .md
// suffix, the form used for path equality checks.
func (p PresetConfig) OutputNotePath() string {
	return NormalizePath(EnsureMarkdownSuffix(p.OutputPath))
}
