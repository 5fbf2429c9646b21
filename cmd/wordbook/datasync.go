package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/datasync"
)

func newExportCommand() *cobra.Command {
	format := datasync.FormatYAML
	var output string

	command := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			state, err := loadState(cfg)
			if err != nil {
				return err
			}

			if err := datasync.Export(cmd.Context(), state.Dictionary, datasync.ExportOptions{
				Format:           format,
				Output:           output,
				MarkdownTemplate: cfg.Export.MarkdownTemplate,
			}); err != nil {
				return fmt.Errorf("datasync.Export() > %w", err)
			}
			newConsole(cmd).Success("Exported %d entries to %s", state.Dictionary.Len(), output)
			return nil
		},
	}

	flags := command.Flags()
	flags.Var(&format, "format", fmt.Sprintf("Snapshot format. Possible values are %v", datasync.AllFormats()))
	flags.StringVarP(&output, "output", "o", "", "Output file path")
	_ = command.MarkFlagRequired("output")
	return command
}

func newImportCommand() *cobra.Command {
	format := datasync.FormatYAML

	command := &cobra.Command{
		Use:   "import <path>",
		Short: "Add entries from a YAML snapshot. Existing words are skipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			state, err := loadState(cfg)
			if err != nil {
				return err
			}

			importer := datasync.NewImporter(state.Repository, cmd.OutOrStdout())
			result, err := importer.Import(state.Dictionary, format, args[0])
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}
			newConsole(cmd).Success("Imported %d new entries, skipped %d", result.New, result.Skipped)
			return nil
		},
	}

	command.Flags().Var(&format, "format", "Snapshot format. Only yaml is supported")
	return command
}
