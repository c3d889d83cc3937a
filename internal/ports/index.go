package ports

import "linkreport/internal/domain"

// LinkIndex provides cached access to the vault link graph.
// Query operations should be O(1) or O(log n) via database indexes.
type LinkIndex interface {
	// Lifecycle
	Open(vaultPath string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncFull() (*domain.SyncStats, error)
	SyncIncremental() (*domain.SyncStats, error)

	// Edge queries
	LinksFrom(sourcePath string) ([]domain.IndexEdge, error)
	LinksTo(target string) ([]domain.IndexEdge, error)
}
