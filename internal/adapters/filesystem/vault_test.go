package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestVault(t *testing.T, files map[string]string) *Vault {
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
	return NewVault(tmpDir)
}

func TestNotes(t *testing.T) {
	v := setupTestVault(t, map[string]string{
		"A.md":             "",
		"Notes/B.md":       "",
		"Notes/image.png":  "",
		".obsidian/c.md":   "",
		"Notes/Deep/C.md":  "",
	})

	notes, err := v.Notes()
	if err != nil {
		t.Fatalf("Notes failed: %v", err)
	}

	want := []string{"A.md", "Notes/B.md", "Notes/Deep/C.md"}
	if len(notes) != len(want) {
		t.Fatalf("notes = %v, want %v", notes, want)
	}
	for i := range want {
		if notes[i] != want[i] {
			t.Errorf("notes[%d] = %q, want %q", i, notes[i], want[i])
		}
	}
}

func TestLinksAndEmbeds(t *testing.T) {
	v := setupTestVault(t, map[string]string{
		"A.md": "Plain [[B]] and aliased [[C|see c]] and embed ![[D]].\nAlso [[Notes/E|e|extra]].",
	})

	links, err := v.Links("A.md")
	if err != nil {
		t.Fatalf("Links failed: %v", err)
	}
	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d: %+v", len(links), links)
	}
	if links[0].Target != "B" || links[1].Target != "C" || links[2].Target != "Notes/E" {
		t.Errorf("targets = %q, %q, %q", links[0].Target, links[1].Target, links[2].Target)
	}
	if links[1].RawText != "[[C|see c]]" {
		t.Errorf("RawText = %q", links[1].RawText)
	}

	embeds, err := v.Embeds("A.md")
	if err != nil {
		t.Fatalf("Embeds failed: %v", err)
	}
	if len(embeds) != 1 || embeds[0].Target != "D" || !embeds[0].Embed {
		t.Errorf("embeds = %+v", embeds)
	}
}

func TestLinks_MissingNote(t *testing.T) {
	v := setupTestVault(t, nil)
	if _, err := v.Links("missing.md"); err == nil {
		t.Fatal("expected error for missing note")
	}
}

func TestResolve(t *testing.T) {
	v := setupTestVault(t, map[string]string{
		"A.md":            "",
		"Notes/B.md":      "",
		"Notes/Deep/A.md": "",
		"Other/C.md":      "",
	})

	tests := []struct {
		name     string
		target   string
		source   string
		wantPath string
		wantOK   bool
	}{
		{"vault-absolute", "A", "Other/C.md", "A.md", true},
		{"relative to source dir", "Deep/A", "Notes/B.md", "Notes/Deep/A.md", true},
		{"unique basename anywhere", "B", "A.md", "Notes/B.md", true},
		{"basename with heading fragment", "B#Section", "A.md", "Notes/B.md", true},
		{"explicit md suffix", "Other/C.md", "A.md", "Other/C.md", true},
		{"case-insensitive lookup", "b", "A.md", "Notes/B.md", true},
		{"root shadows deeper duplicate", "A", "Notes/B.md", "A.md", true},
		{"unresolved", "X", "A.md", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Resolve(tt.target, tt.source)
			if ok != tt.wantOK || got != tt.wantPath {
				t.Errorf("Resolve(%q, %q) = %q, %v; want %q, %v",
					tt.target, tt.source, got, ok, tt.wantPath, tt.wantOK)
			}
		})
	}
}

func TestShortestLinkText(t *testing.T) {
	v := setupTestVault(t, map[string]string{
		"Notes/B.md":      "",
		"A.md":            "",
		"Notes/Deep/A.md": "",
	})

	if got := v.ShortestLinkText("Notes/B.md", "out.md"); got != "B" {
		t.Errorf("unique basename: got %q, want B", got)
	}
	if got := v.ShortestLinkText("Notes/Deep/A.md", "out.md"); got != "Notes/Deep/A" {
		t.Errorf("ambiguous basename: got %q, want Notes/Deep/A", got)
	}
}

func TestWriteNote(t *testing.T) {
	v := setupTestVault(t, map[string]string{"A.md": ""})

	if err := v.WriteNote("reports/out.md", "| Count | Link | Connected Terms |\n"); err != nil {
		t.Fatalf("WriteNote failed: %v", err)
	}
	if !v.Exists("reports/out.md") {
		t.Fatal("written note does not exist")
	}

	// Overwrite replaces wholesale.
	if err := v.WriteNote("reports/out.md", "new"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(v.root, "reports", "out.md"))
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want new", data)
	}

	// The new note shows up in subsequent enumerations.
	notes, err := v.Notes()
	if err != nil {
		t.Fatalf("Notes failed: %v", err)
	}
	found := false
	for _, n := range notes {
		if n == "reports/out.md" {
			found = true
		}
	}
	if !found {
		t.Errorf("written note missing from enumeration: %v", notes)
	}
}
