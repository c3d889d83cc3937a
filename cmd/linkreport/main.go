package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"linkreport/internal/adapters/filesystem"
	"linkreport/internal/adapters/presetstore"
	"linkreport/internal/adapters/tui"
	"linkreport/internal/config"
	"linkreport/internal/logging"
)

func main() {
	vaultPath := config.VaultPath()

	vault := filesystem.NewVault(vaultPath)
	store := presetstore.New(config.PresetsPath(vaultPath))
	log := logging.New(store.Verbose())
	defer log.Sync()

	app := tui.NewApp(store, vault, log)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
