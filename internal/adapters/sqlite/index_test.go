package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupIndexedVault(t *testing.T, files map[string]string) (*Index, string) {
	t.Helper()

	tmpDir := t.TempDir()
	for p, content := range files {
		full := filepath.Join(tmpDir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	idx := NewIndex()
	if err := idx.Open(tmpDir); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx, tmpDir
}

func TestSyncFull(t *testing.T) {
	idx, _ := setupIndexedVault(t, map[string]string{
		"A.md":       "Links [[B]] and [[C|see c]] and ![[D]].",
		"Notes/B.md": "Back to [[A]].",
		"skip.txt":   "[[not indexed]]",
	})

	if !idx.NeedsFullRebuild() {
		t.Error("fresh index should need a full rebuild")
	}

	stats, err := idx.SyncFull()
	if err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}
	if stats.NotesAdded != 2 {
		t.Errorf("NotesAdded = %d, want 2", stats.NotesAdded)
	}
	if stats.EdgesAdded != 4 {
		t.Errorf("EdgesAdded = %d, want 4", stats.EdgesAdded)
	}
	if idx.NeedsFullRebuild() {
		t.Error("synced index should not need a rebuild")
	}
}

func TestLinksFromAndTo(t *testing.T) {
	idx, _ := setupIndexedVault(t, map[string]string{
		"A.md": "[[B]] then [[C]] then ![[B|embedded]]",
		"C.md": "[[b]]",
	})
	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	from, err := idx.LinksFrom("A.md")
	if err != nil {
		t.Fatalf("LinksFrom failed: %v", err)
	}
	if len(from) != 3 {
		t.Fatalf("expected 3 edges from A.md, got %d", len(from))
	}
	if from[0].Target != "B" || from[1].Target != "C" {
		t.Errorf("edge order wrong: %+v", from)
	}
	if !from[2].Embed || from[2].RawText != "![[B|embedded]]" {
		t.Errorf("embed edge = %+v", from[2])
	}

	// Target match is case-insensitive.
	to, err := idx.LinksTo("b")
	if err != nil {
		t.Fatalf("LinksTo failed: %v", err)
	}
	if len(to) != 3 {
		t.Errorf("expected 3 edges to b, got %d: %+v", len(to), to)
	}
}

func TestSyncIncremental(t *testing.T) {
	idx, dir := setupIndexedVault(t, map[string]string{
		"A.md": "[[B]]",
		"B.md": "no links here",
	})
	if _, err := idx.SyncFull(); err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}

	// Modify A, add C, remove B; backdating is not needed because the
	// incremental sync compares stored mtimes, not wall-clock time.
	aPath := filepath.Join(dir, "A.md")
	if err := os.WriteFile(aPath, []byte("[[B]] and [[C]]"), 0644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	newTime := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(aPath, newTime, newTime); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "C.md"), []byte("[[A]]"), 0644); err != nil {
		t.Fatalf("write C failed: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "B.md")); err != nil {
		t.Fatalf("remove B failed: %v", err)
	}

	stats, err := idx.SyncIncremental()
	if err != nil {
		t.Fatalf("SyncIncremental failed: %v", err)
	}
	if stats.NotesAdded != 1 {
		t.Errorf("NotesAdded = %d, want 1", stats.NotesAdded)
	}
	if stats.NotesUpdated != 1 {
		t.Errorf("NotesUpdated = %d, want 1", stats.NotesUpdated)
	}
	if stats.NotesDeleted != 1 {
		t.Errorf("NotesDeleted = %d, want 1", stats.NotesDeleted)
	}

	from, err := idx.LinksFrom("A.md")
	if err != nil {
		t.Fatalf("LinksFrom failed: %v", err)
	}
	if len(from) != 2 {
		t.Errorf("expected re-indexed edges for A.md, got %+v", from)
	}
}
