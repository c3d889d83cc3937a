package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"linkreport/internal/adapters/sqlite"
	"linkreport/internal/domain"
)

var syncFullFlag bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the link index",
	Long: `Sync the on-disk link index with the vault. By default only notes
whose modification time changed are re-scanned; --full rebuilds the
index from scratch.

The index backs the backlinks command and is stored under
.linkreport/index.db inside the vault.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		index := sqlite.NewIndex()
		if err := index.Open(vaultPath); err != nil {
			return err
		}
		defer index.Close()

		full := syncFullFlag || index.NeedsFullRebuild()

		var stats *domain.SyncStats
		var err error
		if full {
			stats, err = index.SyncFull()
		} else {
			stats, err = index.SyncIncremental()
		}
		if err != nil {
			return err
		}

		mode := "incremental"
		if full {
			mode = "full"
		}
		fmt.Printf("Sync (%s): %d files scanned in %s\n", mode, stats.FilesScanned, stats.Duration.Round(time.Millisecond))
		fmt.Printf("  notes: +%d ~%d -%d\n", stats.NotesAdded, stats.NotesUpdated, stats.NotesDeleted)
		fmt.Printf("  links: +%d -%d\n", stats.EdgesAdded, stats.EdgesDeleted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVar(&syncFullFlag, "full", false, "rebuild the index from scratch")
}
