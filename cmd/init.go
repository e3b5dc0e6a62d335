package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartsave/pkg/usecase"
)

var initForce bool

func buildInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a smartsave.yaml project config",
		Long: `Writes smartsave.yaml with the default naming fields into dir (default:
the current directory), marking it as a project root.

Examples:
  smartsave init
  smartsave init --force ./shows/abc`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(_ *cobra.Command, args []string) error {
	req := usecase.InitRequest{Dir: ".", Force: initForce}
	if len(args) == 1 {
		req.Dir = args[0]
	}

	execution, err := newUseCaseService().RunInit(req)
	if err != nil {
		return err
	}

	fmt.Printf("Created: %s\n", execution.ConfigPath)
	fmt.Printf("Scenes folder: %s\n", execution.Config.ScenesDir)

	return nil
}
