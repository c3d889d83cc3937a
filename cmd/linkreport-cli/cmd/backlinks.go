package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"linkreport/internal/adapters/sqlite"
)

var backlinksCmd = &cobra.Command{
	Use:   "backlinks <target>",
	Short: "List notes linking to a target",
	Long: `List notes that link to a target, using the link index. The target
is matched case-insensitively against the raw link targets, so both a
note path and a bare note name work.

Run sync first if the vault changed since the last sync.

Examples:
  linkreport-cli backlinks "Ada Lovelace"
  linkreport-cli backlinks "people/Ada Lovelace.md"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index := sqlite.NewIndex()
		if err := index.Open(vaultPath); err != nil {
			return err
		}
		defer index.Close()

		edges, err := index.LinksTo(args[0])
		if err != nil {
			return err
		}
		if len(edges) == 0 {
			fmt.Println("No backlinks found.")
			return nil
		}

		for _, e := range edges {
			marker := ""
			if e.Embed {
				marker = " (embed)"
			}
			fmt.Printf("%s  %s%s\n", e.SourcePath, e.RawText, marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backlinksCmd)
}
