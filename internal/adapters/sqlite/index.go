package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"linkreport/internal/domain"
	"linkreport/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.LinkIndex using SQLite
type Index struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
}

// Ensure Index implements LinkIndex
var _ ports.LinkIndex = (*Index)(nil)

// NewIndex creates a new SQLite link index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given vault path
func (idx *Index) Open(vaultPath string) error {
	// Expand ~ in path
	if len(vaultPath) > 0 && vaultPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	idx.vaultPath = vaultPath
	idx.dbPath = databasePath(vaultPath)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS notes (
			path TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS links (
			source_path TEXT NOT NULL,
			target TEXT NOT NULL,
			raw_text TEXT NOT NULL,
			embed INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_path);
		CREATE INDEX IF NOT EXISTS idx_links_target ON links(lower(target));
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the index should be fully rebuilt
func (idx *Index) NeedsFullRebuild() bool {
	var version, vaultHash, lastSync string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'vault_path_hash'").Scan(&vaultHash)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'last_sync_time'").Scan(&lastSync)

	return version != schemaVersion || vaultHash != hashVaultPath(idx.vaultPath) || lastSync == ""
}

// LinksFrom returns the cached outbound link edges of a note
func (idx *Index) LinksFrom(sourcePath string) ([]domain.IndexEdge, error) {
	return idx.queryEdges(
		`SELECT source_path, target, raw_text, embed FROM links WHERE source_path = ? ORDER BY rowid`,
		sourcePath)
}

// LinksTo returns the cached edges pointing at a target, matched
// case-insensitively on the parsed target path
func (idx *Index) LinksTo(target string) ([]domain.IndexEdge, error) {
	return idx.queryEdges(
		`SELECT source_path, target, raw_text, embed FROM links WHERE lower(target) = lower(?) ORDER BY source_path, rowid`,
		target)
}

func (idx *Index) queryEdges(query, arg string) ([]domain.IndexEdge, error) {
	rows, err := idx.db.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var edges []domain.IndexEdge
	for rows.Next() {
		var e domain.IndexEdge
		var embed int
		if err := rows.Scan(&e.SourcePath, &e.Target, &e.RawText, &embed); err != nil {
			return nil, err
		}
		e.Embed = embed != 0
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
	`, schemaVersion)
	if err != nil {
		return err
	}
	_, err = idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('vault_path_hash', ?)`,
		hashVaultPath(idx.vaultPath))
	return err
}

func (idx *Index) insertNote(note *domain.IndexNote) error {
	_, err := idx.db.Exec(`INSERT OR REPLACE INTO notes (path, title, mtime) VALUES (?, ?, ?)`,
		note.Path, note.Title, note.Mtime)
	return err
}

func (idx *Index) insertEdge(edge *domain.IndexEdge) error {
	embed := 0
	if edge.Embed {
		embed = 1
	}
	_, err := idx.db.Exec(`INSERT INTO links (source_path, target, raw_text, embed) VALUES (?, ?, ?, ?)`,
		edge.SourcePath, edge.Target, edge.RawText, embed)
	return err
}

func databasePath(vaultPath string) string {
	return filepath.Join(vaultPath, ".linkreport", "index.db")
}

func hashVaultPath(vaultPath string) string {
	sum := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(sum[:])
}
