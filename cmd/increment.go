package main

import (
	"github.com/spf13/cobra"
)

func buildIncrementCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "increment",
		Aliases: []string{"inc"},
		Short:   "Save the open scene as the next available version",
		Long: `Scans the scene folder for <descriptor>_<task>_v*<ext>, then saves the
open scene one version above the highest one found (v001 if none).

Examples:
  smartsave increment --document Scenes/hero_rig_v003.ma   # hero_rig_v004.ma
  smartsave increment --dry-run                            # preview only

Versions are compared numerically, so v1000 follows v999.`,
		Args: cobra.NoArgs,
		RunE: runIncrement,
	}

	sceneOpts.register(cmd, false)

	return cmd
}

func runIncrement(cmd *cobra.Command, _ []string) error {
	printDryRunBanner()

	execution, err := newUseCaseService().RunIncrement(sceneOpts.request(cmd))
	if err != nil {
		return err
	}

	printSaveExecution("INCREMENT", execution)

	return nil
}
