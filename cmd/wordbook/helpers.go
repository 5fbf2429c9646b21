package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/cli"
	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

var (
	configFile     string
	dictionaryFile string
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	loader.SetDictionaryFile(dictionaryFile)
	return loader.Load()
}

func newRepository(cfg *config.Config) *dictionary.JSONFileRepository {
	return dictionary.NewJSONFileRepository(cfg.Dictionary.File)
}

func loadState(cfg *config.Config) (*cli.State, error) {
	return cli.LoadState(newRepository(cfg))
}

func newConsole(cmd *cobra.Command) *cli.Console {
	return cli.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
}

func newOperations(console *cli.Console, cfg *config.Config) *cli.Operations {
	return cli.NewOperations(console, dictionary.SuggestOptions{
		Limit:  cfg.Suggestions.Limit,
		Cutoff: cfg.Suggestions.Cutoff,
	})
}
