package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/cli"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate stored entries for whitespace and missing values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return cli.ValidateDictionary(newRepository(cfg), newConsole(cmd))
		},
	}
}

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateLegacyExamplesCommand())

	return migrateCmd
}

func newMigrateLegacyExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "legacy-examples",
		Short: "Convert entries with a single example string into an examples list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return cli.MigrateLegacyExamples(newRepository(cfg), newConsole(cmd))
		},
	}
}
