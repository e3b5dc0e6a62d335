package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartsave/pkg/usecase"
)

func buildSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the open scene under its versioned name",
		Long: `Saves the open scene as <folder>/<descriptor>_<task>_v<version><ext>.

Fields start from --path, else from the open document's name, else from
the project defaults. Field flags then override them. Missing folders are
created on demand.

Examples:
  smartsave save --document untitled.ma                 # main_model_v001.ma
  smartsave save --descriptor hero --task rig           # hero_rig_v001.ma
  smartsave save --document Scenes/hero_rig_v003.ma     # overwrite v003
  smartsave save --descriptor "hero char" --sanitize    # hero-char_model_v001.ma`,
		Args: cobra.NoArgs,
		RunE: runSave,
	}

	sceneOpts.register(cmd, true)

	return cmd
}

func runSave(cmd *cobra.Command, _ []string) error {
	printDryRunBanner()

	execution, err := newUseCaseService().RunSave(sceneOpts.request(cmd))
	if err != nil {
		return err
	}

	printSaveExecution("SAVE", execution)

	return nil
}

func printSaveExecution(command string, execution usecase.SaveExecution) {
	printCommandHeader(command, execution.Project.Root)
	if verbose {
		fmt.Println()
		printScene(execution.Scene)
	}
	fmt.Println()

	version := fmt.Sprintf("Version:  %d", execution.Version)
	if execution.PreviousVersion != execution.Version {
		version = fmt.Sprintf("Version:  %d -> %d", execution.PreviousVersion, execution.Version)
	}

	printSummary(
		fmt.Sprintf("Scene:    %s", execution.Path),
		version,
	)
	printDryRunHint()
}
