package domain

import "time"

// IndexNote represents a cached note entry in the link index.
type IndexNote struct {
	Path  string // Relative path from vault root (primary key)
	Title string // Base name without extension
	Mtime int64  // Unix timestamp for incremental sync
}

// IndexEdge represents a cached wiki link between notes.
type IndexEdge struct {
	SourcePath string // Note containing the link
	Target     string // Parsed target path component
	RawText    string // Original [[link]] token
	Embed      bool   // True for ![[...]] transclusions
}

// SyncStats holds statistics from an index sync operation.
type SyncStats struct {
	NotesAdded   int
	NotesUpdated int
	NotesDeleted int
	EdgesAdded   int
	EdgesDeleted int
	FilesScanned int
	Duration     time.Duration
}
