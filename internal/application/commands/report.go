package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"linkreport/internal/application"
	"linkreport/internal/domain"
	"linkreport/internal/ports"
)

// ReportResult contains the result of one report generation.
type ReportResult struct {
	Preset       string
	OutputPath   string
	Content      string
	EntryCount   int
	NotesScanned int
	NotesSkipped int // notes whose reference metadata could not be read
	Message      string
}

// ReportCommand generates the link report for one preset and writes it to
// the preset's output path.
type ReportCommand struct {
	vault   ports.Vault
	presets []domain.PresetConfig
	log     *zap.SugaredLogger

	PresetName string
}

// NewReportCommand creates a new ReportCommand. presets is the full preset
// list; every preset's output path contributes to the global exclusion list.
func NewReportCommand(vault ports.Vault, presets []domain.PresetConfig, log *zap.SugaredLogger, presetName string) *ReportCommand {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ReportCommand{
		vault:      vault,
		presets:    presets,
		log:        log,
		PresetName: presetName,
	}
}

// Execute runs the report generation. A missing preset aborts before any
// file I/O. Per-note metadata errors are recovered: the note is skipped,
// counted, and the run continues.
func (c *ReportCommand) Execute(ctx context.Context) (*ReportResult, error) {
	preset, ok := domain.FindPreset(c.presets, c.PresetName)
	if !ok {
		return nil, fmt.Errorf("%q: %w", c.PresetName, application.ErrPresetNotFound)
	}

	outputPath := preset.OutputNotePath()
	filter := domain.NewPathFilter(c.presets)
	agg := domain.NewAggregator()

	notes, err := c.vault.Notes()
	if err != nil {
		return nil, fmt.Errorf("enumerating notes: %w", err)
	}

	result := &ReportResult{Preset: preset.Name, OutputPath: outputPath}

	for _, note := range notes {
		if domain.NormalizePath(note) == outputPath {
			continue
		}
		if filter.IsExcluded(note, preset.ExcludeFromFilename, preset.ExcludeFromGlob) {
			c.log.Debugf("source excluded: %s", note)
			continue
		}

		occurrences, err := c.noteReferences(note, preset.IncludeEmbeds)
		if err != nil {
			result.NotesSkipped++
			c.log.Warnf("skipping note: %v", &application.NoteError{Path: note, Err: err})
			continue
		}
		result.NotesScanned++

		for _, link := range occurrences {
			c.fold(agg, filter, preset, outputPath, note, link)
		}
	}

	entries := agg.Entries()
	result.Content = domain.RenderTable(entries, preset.SortAlphabetical)
	result.EntryCount = len(entries)

	if err := c.vault.WriteNote(outputPath, result.Content); err != nil {
		return nil, &application.WriteError{Path: outputPath, Err: err}
	}

	result.Message = fmt.Sprintf("Wrote %d entries to %s", result.EntryCount, outputPath)
	c.log.Debugf("report %s: %d notes scanned, %d skipped, %d entries",
		preset.Name, result.NotesScanned, result.NotesSkipped, result.EntryCount)
	return result, nil
}

// noteReferences gathers a note's outbound occurrences: direct links always,
// embeds only when enabled. An error on either side skips the whole note.
func (c *ReportCommand) noteReferences(note string, includeEmbeds bool) ([]domain.Link, error) {
	links, err := c.vault.Links(note)
	if err != nil {
		return nil, err
	}
	if !includeEmbeds {
		return links, nil
	}

	embeds, err := c.vault.Embeds(note)
	if err != nil {
		return nil, err
	}
	return append(links, embeds...), nil
}

// fold admits or discards one occurrence and updates the aggregate.
func (c *ReportCommand) fold(agg *domain.Aggregator, filter *domain.PathFilter, preset domain.PresetConfig, outputPath, note string, link domain.Link) {
	ref := domain.ParseReference(link.RawText)
	target := ref.TargetPath
	if target == "" {
		target = link.Target
	}
	if target == "" {
		return
	}

	resolved, exists := c.vault.Resolve(target, note)
	if exists {
		if preset.NonexistentOnly {
			return
		}
		if filter.IsExcluded(resolved, preset.ExcludeToFilename, preset.ExcludeToGlob) {
			c.log.Debugf("target excluded: %s", resolved)
			return
		}
	}

	identity := target
	if exists {
		identity = resolved
	}

	if agg.Has(identity) {
		agg.Add(identity, "", "", link.RawText)
		return
	}

	canonical := target
	if exists {
		short := c.vault.ShortestLinkText(resolved, outputPath)
		if preset.LinkToFiles {
			canonical = "[[" + short + "]]"
		} else {
			canonical = short
		}
	}
	agg.Add(identity, canonical, ref.DisplayName(), link.RawText)
}
