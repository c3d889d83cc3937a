package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linkreport/internal/application/commands"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new report preset",
	Long: `Add a new report preset with default options. The output note
defaults to "<name> links.md" in the vault root; adjust it with edit.

Examples:
  linkreport-cli add people
  linkreport-cli edit people --output "reports/people.md"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		addCmd := commands.NewAddPresetCommand(GetStore(), args[0])
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
