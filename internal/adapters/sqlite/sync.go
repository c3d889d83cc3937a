package sqlite

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"linkreport/internal/domain"
)

// Wiki link tokens including the embed marker and optional alias.
var linkPattern = regexp.MustCompile(`!?\[\[[^\[\]]+\]\]`)

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	if _, err := idx.db.Exec(`DELETE FROM notes`); err != nil {
		return nil, err
	}
	if _, err := idx.db.Exec(`DELETE FROM links`); err != nil {
		return nil, err
	}

	err := idx.walkVault(func(relPath string, mtime int64) {
		stats.FilesScanned++
		if err := idx.insertNote(noteRecord(relPath, mtime)); err != nil {
			return // continue on error
		}
		stats.NotesAdded++
		stats.EdgesAdded += idx.indexLinks(relPath)
	})
	if err != nil {
		return stats, err
	}

	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental updates only notes whose mtime changed since they were
// indexed, and removes notes that disappeared from the vault
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	// Known paths with their indexed mtimes, to detect changes and deletions
	known := make(map[string]int64)
	rows, err := idx.db.Query(`SELECT path, mtime FROM notes`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var path string
		var mtime int64
		rows.Scan(&path, &mtime)
		known[path] = mtime
	}
	rows.Close()

	seen := make(map[string]bool)

	err = idx.walkVault(func(relPath string, mtime int64) {
		seen[relPath] = true
		stats.FilesScanned++

		indexed, exists := known[relPath]
		if exists && indexed == mtime {
			return
		}

		if err := idx.insertNote(noteRecord(relPath, mtime)); err != nil {
			return
		}
		if exists {
			stats.NotesUpdated++
			if res, err := idx.db.Exec(`DELETE FROM links WHERE source_path = ?`, relPath); err == nil {
				n, _ := res.RowsAffected()
				stats.EdgesDeleted += int(n)
			}
		} else {
			stats.NotesAdded++
		}
		stats.EdgesAdded += idx.indexLinks(relPath)
	})
	if err != nil {
		return stats, err
	}

	// Remove notes that no longer exist
	for path := range known {
		if seen[path] {
			continue
		}
		if _, err := idx.db.Exec(`DELETE FROM notes WHERE path = ?`, path); err == nil {
			stats.NotesDeleted++
		}
		if res, err := idx.db.Exec(`DELETE FROM links WHERE source_path = ?`, path); err == nil {
			n, _ := res.RowsAffected()
			stats.EdgesDeleted += int(n)
		}
	}

	idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix())

	stats.Duration = time.Since(start)
	return stats, nil
}

// walkVault visits every markdown note under the vault root, skipping hidden
// directories. Walk errors on individual entries are ignored.
func (idx *Index) walkVault(visit func(relPath string, mtime int64)) error {
	return filepath.Walk(idx.vaultPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != idx.vaultPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}
		relPath, err := filepath.Rel(idx.vaultPath, path)
		if err != nil {
			return nil
		}
		visit(filepath.ToSlash(relPath), info.ModTime().Unix())
		return nil
	})
}

// indexLinks parses a note's wiki links and inserts one edge per occurrence,
// returning the number inserted. Unreadable notes contribute no edges.
func (idx *Index) indexLinks(relPath string) int {
	data, err := os.ReadFile(filepath.Join(idx.vaultPath, filepath.FromSlash(relPath)))
	if err != nil {
		return 0
	}

	added := 0
	for _, raw := range linkPattern.FindAllString(string(data), -1) {
		ref := domain.ParseReference(raw)
		if ref.TargetPath == "" {
			continue
		}
		edge := &domain.IndexEdge{
			SourcePath: relPath,
			Target:     ref.TargetPath,
			RawText:    raw,
			Embed:      ref.IsEmbed,
		}
		if err := idx.insertEdge(edge); err == nil {
			added++
		}
	}
	return added
}

func noteRecord(relPath string, mtime int64) *domain.IndexNote {
	base := filepath.Base(relPath)
	return &domain.IndexNote{
		Path:  relPath,
		Title: strings.TrimSuffix(base, filepath.Ext(base)),
		Mtime: mtime,
	}
}
