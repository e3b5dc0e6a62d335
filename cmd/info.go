package main

import (
	"github.com/spf13/cobra"

	"smartsave/pkg/usecase"
)

func buildInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [path]",
		Short: "Show the fields of a scene filename",
		Long: `Parses a scene path, or the open document, into its fields.
Fails when the name does not follow <descriptor>_<task>_v<digits><ext>.

Examples:
  smartsave info Scenes/hero_rig_v012.mb
  smartsave info --document Scenes/main_model_v001.ma`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInfo,
	}
}

func runInfo(_ *cobra.Command, args []string) error {
	req := usecase.SceneRequest{Document: resolveDocument()}
	if len(args) == 1 {
		req.Path = args[0]
	}

	execution, err := newUseCaseService().RunInfo(req)
	if err != nil {
		return err
	}

	printScene(execution.Scene)

	return nil
}
