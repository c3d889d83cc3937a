package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured report presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := GetStore().Load()
		if err != nil {
			return err
		}

		if len(presets) == 0 {
			fmt.Println("No presets configured. Add one with: linkreport-cli add <name>")
			return nil
		}

		for _, p := range presets {
			var flags []string
			if p.IncludeEmbeds {
				flags = append(flags, "embeds")
			}
			if p.NonexistentOnly {
				flags = append(flags, "nonexistent-only")
			}
			if p.SortAlphabetical {
				flags = append(flags, "alphabetical")
			}
			if !p.LinkToFiles {
				flags = append(flags, "plain")
			}

			suffix := ""
			if len(flags) > 0 {
				suffix = " (" + strings.Join(flags, ", ") + ")"
			}
			fmt.Printf("%s -> %s%s\n", p.Name, p.OutputNotePath(), suffix)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
