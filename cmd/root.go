package main

import (
	"github.com/spf13/cobra"
)

var (
	dryRun       bool
	verbose      bool
	configPath   string
	documentPath string
)

func buildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smartsave",
		Short: "Save scene files under versioned names",
		Long: `smartsave names, locates and increments versioned scene files.

Scene files follow one naming convention:
  <descriptor>_<task>_v<version><extension>    e.g. main_model_v001.ma

Commands:
  save       Saves the open scene under its versioned name
  increment  Saves the open scene as the next available version
  next       Shows the next available version without saving
  info       Shows the fields of a scene filename
  list       Lists versioned scenes in a folder tree
  init       Writes a smartsave.yaml project config

Examples:
  # Start a new scene in the project's Scenes folder
  smartsave save --document untitled.ma

  # Save a new version of the scene you are working on
  smartsave increment --document Scenes/hero_rig_v003.ma

  # Preview where the next version would go
  smartsave increment --dry-run --descriptor hero --task rig

Project:
  The project root is the nearest directory holding smartsave.yaml or
  workspace.mel. New scenes go to <project root>/Scenes unless configured.
  The open document can also be given with SMARTSAVE_DOCUMENT.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
		},
	}

	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Project config file (default: nearest smartsave.yaml)")
	cmd.PersistentFlags().StringVar(&documentPath, "document", "", "Working file acting as the open document")

	return cmd
}
