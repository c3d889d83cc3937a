package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"linkreport/internal/adapters/filesystem"
	"linkreport/internal/adapters/notify"
	"linkreport/internal/adapters/presetstore"
	"linkreport/internal/config"
	"linkreport/internal/logging"
	"linkreport/internal/ports"
)

var (
	vaultPath string
	vault     ports.Vault
	store     ports.PresetStore
	notifier  ports.Notifier
	logger    *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "linkreport-cli",
	Short: "CLI for aggregating wiki-links across a note vault",
	Long: `linkreport-cli aggregates [[wiki-links]] across a markdown note vault
and writes frequency reports back into the vault as notes.

Reports are driven by named presets stored alongside the vault. Each
preset controls which notes are scanned, which link targets are counted,
and how the resulting table is sorted and rendered.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		vault = filesystem.NewVault(vaultPath)
		store = presetstore.New(config.PresetsPath(vaultPath))
		notifier = notify.NewTerminal()
		logger = logging.New(store.Verbose())
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}

// GetVault returns the initialized vault adapter
func GetVault() ports.Vault {
	return vault
}

// GetStore returns the initialized preset store
func GetStore() ports.PresetStore {
	return store
}
