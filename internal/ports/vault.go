package ports

import "linkreport/internal/domain"

// Vault provides read access to the note corpus and write access for
// generated reports. Note identity is the vault-relative path string.
type Vault interface {
	// Notes returns the vault-relative paths of all markdown notes.
	Notes() ([]string, error)

	// Links returns the outbound wiki-link occurrences of a note. Embed
	// occurrences are reported separately by Embeds.
	Links(notePath string) ([]domain.Link, error)

	// Embeds returns the outbound transclusion occurrences of a note.
	Embeds(notePath string) ([]domain.Link, error)

	// Resolve maps a reference target to an existing note path, relative to
	// the source note. ok is false when no note in the corpus matches.
	Resolve(target, sourcePath string) (path string, ok bool)

	// ShortestLinkText returns the shortest unambiguous reference text for
	// notePath as seen from fromPath.
	ShortestLinkText(notePath, fromPath string) string

	// Exists reports whether a file exists at the vault-relative path.
	Exists(path string) bool

	// WriteNote replaces the content of path wholesale, creating parent
	// directories as needed.
	WriteNote(path, content string) error
}
