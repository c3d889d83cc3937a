package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linkreport/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a report preset",
	Long: `Delete a report preset by name. The generated report note, if any,
is left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		deleteCmd := commands.NewDeletePresetCommand(GetStore(), args[0])
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
