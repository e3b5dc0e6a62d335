package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := buildRootCommand()
	rootCmd.AddCommand(buildSaveCommand())
	rootCmd.AddCommand(buildIncrementCommand())
	rootCmd.AddCommand(buildNextCommand())
	rootCmd.AddCommand(buildInfoCommand())
	rootCmd.AddCommand(buildListCommand())
	rootCmd.AddCommand(buildInitCommand())
	return rootCmd
}
