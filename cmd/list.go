package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"smartsave/pkg/usecase"
)

func buildListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [folder]",
		Short: "List versioned scenes in a folder tree",
		Long: `Lists every versioned scene under a folder (default: the project's
scenes folder), grouped by folder, descriptor, task and extension.

Examples:
  smartsave list
  smartsave list -v ./Scenes     # also show unversioned files and latest file details`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
}

func runList(_ *cobra.Command, args []string) error {
	req := usecase.ListRequest{}
	if len(args) == 1 {
		req.Folder = args[0]
	}

	execution, err := newUseCaseService().RunList(req)
	if err != nil {
		return err
	}

	printCommandHeader("LIST", execution.RootDir)
	fmt.Printf("Found %d files in %v\n", execution.FileCount, execution.CollectDuration.Round(time.Millisecond))
	fmt.Println()

	for _, group := range execution.Groups {
		printSceneGroup(execution.RootDir, group)
	}
	if verbose {
		for _, path := range execution.Unversioned {
			fmt.Printf("UNVERSIONED: %s\n", relPath(execution.RootDir, path))
		}
	}
	if len(execution.Groups) > 0 || (verbose && len(execution.Unversioned) > 0) {
		fmt.Println()
	}

	printSummary(
		fmt.Sprintf("Total files:  %d", execution.FileCount),
		fmt.Sprintf("Scenes:       %d", len(execution.Groups)),
		fmt.Sprintf("Unversioned:  %d", len(execution.Unversioned)),
	)

	return nil
}

func printSceneGroup(rootDir string, group usecase.SceneGroup) {
	fmt.Printf("%s\n", relPath(rootDir, group.LatestFile.Path))
	fmt.Printf("    VERSIONS: %s\n", formatVersions(group.Versions))
	if verbose {
		fmt.Printf("    LATEST:   %s, %d bytes\n",
			group.LatestFile.ModTime.Format(time.DateTime), group.LatestFile.Size)
	}
}

func relPath(rootDir, absPath string) string {
	rel, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
