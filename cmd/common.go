package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"smartsave/pkg/scenefile"
	"smartsave/pkg/usecase"
)

// documentEnv names the open document when --document is not given.
const documentEnv = "SMARTSAVE_DOCUMENT"

// sceneFlags mirror the editable fields of a scene.
type sceneFlags struct {
	path       string
	folder     string
	descriptor string
	task       string
	version    int
	ext        string
	sanitize   bool
}

var sceneOpts sceneFlags

func (f *sceneFlags) register(cmd *cobra.Command, withVersion bool) {
	flags := cmd.Flags()
	flags.StringVar(&f.path, "path", "", "Start from this scene path instead of the open document")
	flags.StringVar(&f.folder, "folder", "", "Folder to save into")
	flags.StringVar(&f.descriptor, "descriptor", "", "Descriptor field, e.g. main")
	flags.StringVar(&f.task, "task", "", "Task field, e.g. model")
	flags.StringVar(&f.ext, "ext", "", "File extension, e.g. .ma")
	flags.BoolVar(&f.sanitize, "sanitize", false, "Normalise descriptor and task instead of rejecting invalid characters")
	if withVersion {
		flags.IntVar(&f.version, "version", 0, "Version number")
	}
}

func (f *sceneFlags) request(cmd *cobra.Command) usecase.SceneRequest {
	flags := cmd.Flags()
	fields := usecase.Fields{Sanitize: f.sanitize}

	if flags.Changed("folder") {
		fields.FolderPath = &f.folder
	}
	if flags.Changed("descriptor") {
		fields.Descriptor = &f.descriptor
	}
	if flags.Changed("task") {
		fields.Task = &f.task
	}
	if flags.Lookup("version") != nil && flags.Changed("version") {
		fields.Version = &f.version
	}
	if flags.Changed("ext") {
		fields.Extension = &f.ext
	}

	return usecase.SceneRequest{
		Path:     f.path,
		Document: resolveDocument(),
		Fields:   fields,
		DryRun:   dryRun,
	}
}

func resolveDocument() string {
	if documentPath != "" {
		return documentPath
	}
	return os.Getenv(documentEnv)
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newUseCaseService() *usecase.Service {
	return usecase.New(usecase.Options{
		ConfigPath: configPath,
		Logger:     slog.Default(),
	})
}

func printDryRunBanner() {
	if !dryRun {
		return
	}

	fmt.Println("=== DRY RUN - no changes will be made ===")
	fmt.Println()
}

func printCommandHeader(command, rootDir string) {
	fmt.Printf("Command: %s\n", command)
	fmt.Printf("Project root: %s\n", rootDir)
}

func printScene(sf *scenefile.SceneFile) {
	fmt.Printf("Folder:      %s\n", sf.FolderPath())
	fmt.Printf("Descriptor:  %s\n", sf.Descriptor())
	fmt.Printf("Task:        %s\n", sf.Task())
	fmt.Printf("Version:     %d\n", sf.Version())
	fmt.Printf("Extension:   %s\n", sf.Extension())
	fmt.Printf("Filename:    %s\n", sf.Filename())
}

func printSummary(lines ...string) {
	fmt.Println("=== Summary ===")
	for _, line := range lines {
		fmt.Println(line)
	}
}

func printDryRunHint() {
	if !dryRun {
		return
	}

	fmt.Println()
	fmt.Println("Run without --dry-run to apply changes.")
}

func formatVersions(versions []int) string {
	if len(versions) == 0 {
		return "none"
	}

	parts := make([]string, len(versions))
	for i, v := range versions {
		parts[i] = fmt.Sprintf("v%03d", v)
	}
	return strings.Join(parts, ", ")
}
