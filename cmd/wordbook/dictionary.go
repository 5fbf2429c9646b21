package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/cli"
)

func newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <word>",
		Short: "Show a word, or close matches when it is missing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithState(cmd, func(operations *cli.Operations, state *cli.State) error {
				operations.Lookup(state, args[0])
				return nil
			})
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every word in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithState(cmd, func(operations *cli.Operations, state *cli.State) error {
				return operations.ListAll(state)
			})
		},
	}
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the number of words per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithState(cmd, func(operations *cli.Operations, state *cli.State) error {
				return operations.Statistics(state)
			})
		},
	}
}

func runWithState(cmd *cobra.Command, run func(operations *cli.Operations, state *cli.State) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	state, err := loadState(cfg)
	if err != nil {
		return err
	}
	return run(newOperations(newConsole(cmd), cfg), state)
}
