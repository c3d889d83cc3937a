package cmd

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"linkreport/internal/application/commands"
)

var runCopyFlag bool

var runCmd = &cobra.Command{
	Use:   "run <preset>",
	Short: "Generate a link report",
	Long: `Generate the link report for a preset and write it to the preset's
output note.

Examples:
  linkreport-cli run people
  linkreport-cli run reading --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		presets, err := GetStore().Load()
		if err != nil {
			return err
		}

		runCmd := commands.NewReportCommand(GetVault(), presets, logger, args[0])
		result, err := runCmd.Execute(ctx)
		if err != nil {
			notifier.NotifyError(err.Error())
			return err
		}

		notifier.Notify(result.Message)
		if result.NotesSkipped > 0 {
			fmt.Printf("Skipped %d unreadable notes\n", result.NotesSkipped)
		}

		if runCopyFlag {
			if err := clipboard.WriteAll(result.Content); err != nil {
				notifier.NotifyError("clipboard: " + err.Error())
			} else {
				fmt.Println("Copied report to clipboard")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&runCopyFlag, "copy", "c", false, "copy the rendered report to the clipboard")
}
