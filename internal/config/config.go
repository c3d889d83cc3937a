package config

import (
	"os"
	"path/filepath"
	"strings"
)

const DefaultVaultPath = "~/Documents/notes"

// presetsFileName is the vault-local settings file holding the preset list
// and the verbose toggle.
const presetsFileName = ".linkreport.yaml"

// VaultPath returns the vault path from the LINKREPORT_VAULT env var,
// falling back to DefaultVaultPath.
func VaultPath() string {
	if env := os.Getenv("LINKREPORT_VAULT"); env != "" {
		return env
	}
	return DefaultVaultPath
}

// PresetsPath returns the settings file path for a vault.
func PresetsPath(vaultPath string) string {
	return filepath.Join(ExpandHome(vaultPath), presetsFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(p string) string {
	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
