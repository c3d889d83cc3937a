package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linkreport/internal/application"
	"linkreport/internal/application/commands"
	"linkreport/internal/domain"
)

var editFlags struct {
	output              string
	includeEmbeds       bool
	nonexistentOnly     bool
	sortAlphabetical    bool
	linkToFiles         bool
	excludeFromFilename []string
	excludeFromGlob     []string
	excludeToFilename   []string
	excludeToGlob       []string
}

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a report preset",
	Long: `Edit a report preset. Only the flags given on the command line are
changed; every other field keeps its current value.

Examples:
  linkreport-cli edit people --output "reports/people.md"
  linkreport-cli edit people --embeds --alphabetical
  linkreport-cli edit people --exclude-from "^Daily" --exclude-to-glob "Templates/**"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		presets, err := GetStore().Load()
		if err != nil {
			return err
		}
		preset, ok := domain.FindPreset(presets, args[0])
		if !ok {
			return fmt.Errorf("%w: %s", application.ErrPresetNotFound, args[0])
		}

		apply := map[string]func(){
			"output":            func() { preset.OutputPath = editFlags.output },
			"embeds":            func() { preset.IncludeEmbeds = editFlags.includeEmbeds },
			"nonexistent-only":  func() { preset.NonexistentOnly = editFlags.nonexistentOnly },
			"alphabetical":      func() { preset.SortAlphabetical = editFlags.sortAlphabetical },
			"link-targets":      func() { preset.LinkToFiles = editFlags.linkToFiles },
			"exclude-from":      func() { preset.ExcludeFromFilename = editFlags.excludeFromFilename },
			"exclude-from-glob": func() { preset.ExcludeFromGlob = editFlags.excludeFromGlob },
			"exclude-to":        func() { preset.ExcludeToFilename = editFlags.excludeToFilename },
			"exclude-to-glob":   func() { preset.ExcludeToGlob = editFlags.excludeToGlob },
		}
		for name, set := range apply {
			if cmd.Flags().Changed(name) {
				set()
			}
		}

		editCmd := commands.NewEditPresetCommand(GetStore(), preset)
		result, err := editCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editFlags.output, "output", "o", "", "output note path, relative to the vault")
	editCmd.Flags().BoolVar(&editFlags.includeEmbeds, "embeds", false, "include ![[embeds]] in the aggregation")
	editCmd.Flags().BoolVar(&editFlags.nonexistentOnly, "nonexistent-only", false, "report only targets with no note in the vault")
	editCmd.Flags().BoolVar(&editFlags.sortAlphabetical, "alphabetical", false, "sort entries alphabetically instead of by count")
	editCmd.Flags().BoolVar(&editFlags.linkToFiles, "link-targets", true, "render resolved targets as [[links]]")
	editCmd.Flags().StringSliceVar(&editFlags.excludeFromFilename, "exclude-from", nil, "regex patterns excluding source notes by filename")
	editCmd.Flags().StringSliceVar(&editFlags.excludeFromGlob, "exclude-from-glob", nil, "glob patterns excluding source notes by path")
	editCmd.Flags().StringSliceVar(&editFlags.excludeToFilename, "exclude-to", nil, "regex patterns excluding targets by filename")
	editCmd.Flags().StringSliceVar(&editFlags.excludeToGlob, "exclude-to-glob", nil, "glob patterns excluding targets by path")
}
