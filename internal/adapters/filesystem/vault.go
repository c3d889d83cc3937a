package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"linkreport/internal/domain"
)

// Wiki link tokens, embed marker included: [[Target]], [[Target|alias]],
// ![[Target]]. Nested brackets are not part of the syntax.
var wikiLinkPattern = regexp.MustCompile(`!?\[\[[^\[\]]+\]\]`)

// Vault implements ports.Vault on a directory of markdown notes.
type Vault struct {
	root string

	// cached note list, invalidated on writes
	notes []string
}

// NewVault creates a filesystem vault rooted at vaultPath.
func NewVault(vaultPath string) *Vault {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Vault{root: vaultPath}
}

// Notes returns the vault-relative paths of all markdown notes in lexical
// order. Hidden directories are skipped.
func (v *Vault) Notes() ([]string, error) {
	notes, err := v.notePaths()
	if err != nil {
		return nil, err
	}
	return append([]string(nil), notes...), nil
}

func (v *Vault) notePaths() ([]string, error) {
	if v.notes != nil {
		return v.notes, nil
	}

	var notes []string
	err := filepath.WalkDir(v.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != v.root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		rel, err := filepath.Rel(v.root, p)
		if err != nil {
			return nil
		}
		notes = append(notes, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk vault: %w", err)
	}

	sort.Strings(notes)
	v.notes = notes
	return notes, nil
}

// Links returns the outbound wiki-link occurrences of a note.
func (v *Vault) Links(notePath string) ([]domain.Link, error) {
	return v.scan(notePath, false)
}

// Embeds returns the outbound transclusion occurrences of a note.
func (v *Vault) Embeds(notePath string) ([]domain.Link, error) {
	return v.scan(notePath, true)
}

func (v *Vault) scan(notePath string, embeds bool) ([]domain.Link, error) {
	data, err := os.ReadFile(filepath.Join(v.root, filepath.FromSlash(notePath)))
	if err != nil {
		return nil, fmt.Errorf("failed to read note: %w", err)
	}

	var links []domain.Link
	for _, raw := range wikiLinkPattern.FindAllString(string(data), -1) {
		ref := domain.ParseReference(raw)
		if ref.IsEmbed != embeds || ref.TargetPath == "" {
			continue
		}
		links = append(links, domain.Link{
			RawText: raw,
			Target:  ref.TargetPath,
			Embed:   ref.IsEmbed,
		})
	}
	return links, nil
}

// Resolve maps a reference target to an existing note path. Candidates are
// tried relative to the source note's directory, then from the vault root,
// then by unique path suffix anywhere in the vault. A heading fragment after
// # is ignored for resolution.
func (v *Vault) Resolve(target, sourcePath string) (string, bool) {
	target = strings.TrimSpace(target)
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target = target[:i]
	}
	if target == "" {
		return "", false
	}

	cand := domain.NormalizePath(domain.EnsureMarkdownSuffix(target))
	notes, err := v.notePaths()
	if err != nil {
		return "", false
	}

	if dir := path.Dir(sourcePath); dir != "." {
		rel := path.Join(dir, cand)
		for _, n := range notes {
			if strings.EqualFold(n, rel) {
				return n, true
			}
		}
	}

	suffix := "/" + strings.ToLower(cand)
	var matches []string
	for _, n := range notes {
		if strings.EqualFold(n, cand) {
			return n, true
		}
		if strings.HasSuffix(strings.ToLower(n), suffix) {
			matches = append(matches, n)
		}
	}
	if len(matches) == 0 {
		return "", false
	}

	// Prefer the shallowest match; ties fall back to lexical order.
	sort.SliceStable(matches, func(i, j int) bool {
		di := strings.Count(matches[i], "/")
		dj := strings.Count(matches[j], "/")
		if di != dj {
			return di < dj
		}
		return matches[i] < matches[j]
	})
	return matches[0], true
}

// ShortestLinkText returns the shortest unambiguous reference text for a
// note: the bare base name when it is unique in the vault, the full
// vault-relative path otherwise.
func (v *Vault) ShortestLinkText(notePath, fromPath string) string {
	base := strings.TrimSuffix(path.Base(notePath), path.Ext(notePath))

	notes, err := v.notePaths()
	if err != nil {
		return strings.TrimSuffix(notePath, ".md")
	}

	count := 0
	for _, n := range notes {
		name := strings.TrimSuffix(path.Base(n), path.Ext(n))
		if strings.EqualFold(name, base) {
			count++
		}
	}
	if count == 1 {
		return base
	}
	return strings.TrimSuffix(notePath, ".md")
}

// Exists reports whether a file exists at the vault-relative path.
func (v *Vault) Exists(p string) bool {
	_, err := os.Stat(filepath.Join(v.root, filepath.FromSlash(p)))
	return err == nil
}

// WriteNote replaces the content of a note wholesale, creating parent
// directories as needed.
func (v *Vault) WriteNote(p, content string) error {
	full := filepath.Join(v.root, filepath.FromSlash(p))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	v.notes = nil
	return nil
}
