package presetstore

import (
	"path/filepath"
	"testing"

	"linkreport/internal/domain"
)

func TestLoad_MissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), ".linkreport.yaml"))

	presets, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(presets) != 0 {
		t.Errorf("expected no presets, got %+v", presets)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".linkreport.yaml")

	preset := domain.DefaultPreset("graph")
	preset.IncludeEmbeds = true
	preset.ExcludeFromFilename = []string{"^Draft", `\.tmp$`}
	preset.ExcludeToGlob = []string{"Private/**"}

	if err := New(path).Save([]domain.PresetConfig{preset, domain.DefaultPreset("other")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Fresh store, same file.
	loaded, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(loaded))
	}

	got := loaded[0]
	if got.Name != "graph" || got.OutputPath != "graph links.md" {
		t.Errorf("identity fields lost: %+v", got)
	}
	if !got.IncludeEmbeds || !got.LinkToFiles {
		t.Errorf("toggles lost: %+v", got)
	}
	if len(got.ExcludeFromFilename) != 2 || got.ExcludeFromFilename[0] != "^Draft" {
		t.Errorf("pattern lists lost: %+v", got.ExcludeFromFilename)
	}
	if len(got.ExcludeToGlob) != 1 || got.ExcludeToGlob[0] != "Private/**" {
		t.Errorf("glob lists lost: %+v", got.ExcludeToGlob)
	}
	if loaded[1].Name != "other" {
		t.Errorf("preset order lost: %+v", loaded)
	}
}

func TestVerboseToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".linkreport.yaml")
	store := New(path)

	if !store.Verbose() {
		t.Error("verbose should default to enabled")
	}

	if err := store.SetVerbose(false); err != nil {
		t.Fatalf("SetVerbose failed: %v", err)
	}
	if New(path).Verbose() {
		t.Error("disabled verbose toggle did not persist")
	}
}
