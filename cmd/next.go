package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func buildNextCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next available version without saving",
		Args:  cobra.NoArgs,
		RunE:  runNext,
	}

	sceneOpts.register(cmd, false)

	return cmd
}

func runNext(cmd *cobra.Command, _ []string) error {
	execution, err := newUseCaseService().RunNext(sceneOpts.request(cmd))
	if err != nil {
		return err
	}

	fmt.Printf("Folder:   %s\n", execution.Scene.FolderPath())
	fmt.Printf("Pattern:  %s\n", execution.Pattern)
	fmt.Printf("Existing: %s\n", formatVersions(execution.Existing))
	fmt.Printf("Next:     %d\n", execution.Next)

	return nil
}
