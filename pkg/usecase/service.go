// Package usecase provides application-level orchestration for CLI workflows.
package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"smartsave/pkg/collector"
	"smartsave/pkg/config"
	"smartsave/pkg/document"
	"smartsave/pkg/sanitizer"
	"smartsave/pkg/scenefile"
)

// Directories inside a scenes tree that never hold versioned scenes.
var defaultSkipDirs = []string{"incrementalSave", ".mayaSwatches", "autosave"}

// Project files that may sit next to scenes and are not listed.
var defaultSkipFiles = []string{config.ProjectConfigFile, config.WorkspaceMarker}

// Options configures a Service.
type Options struct {
	// ConfigPath is an explicit project config file; "" enables discovery.
	ConfigPath string
	// WorkDir is where project discovery starts; "" means the working directory.
	WorkDir string
	Logger  *slog.Logger
}

// Service orchestrates command workflows without Cobra dependencies.
type Service struct {
	configPath string
	workDir    string
	logger     *slog.Logger
}

// New creates a use-case service.
func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		configPath: opts.ConfigPath,
		workDir:    opts.WorkDir,
		logger:     logger,
	}
}

// Fields mirrors the editable fields of the save form. Nil fields keep the
// value the scene was built with.
type Fields struct {
	FolderPath *string
	Descriptor *string
	Task       *string
	Version    *int
	Extension  *string
	// Sanitize normalises descriptor and task instead of rejecting them.
	Sanitize bool
}

// SceneRequest identifies the scene a workflow operates on.
type SceneRequest struct {
	// Path is an explicit scene path to start from.
	Path string
	// Document is the working file acting as the open document.
	Document string
	Fields   Fields
	DryRun   bool
}

// SaveExecution contains save and increment workflow outputs.
type SaveExecution struct {
	Project         *config.Project
	Scene           *scenefile.SceneFile
	Path            string
	PreviousVersion int
	Version         int
	DryRun          bool
	Duration        time.Duration
}

// NextExecution contains next-version workflow outputs.
type NextExecution struct {
	Scene    *scenefile.SceneFile
	Pattern  string
	Existing []int
	Next     int
}

// InfoExecution contains info workflow outputs.
type InfoExecution struct {
	Scene *scenefile.SceneFile
}

// ListRequest contains inputs for the list workflow.
type ListRequest struct {
	// Folder is the tree to list; "" means the project scenes folder.
	Folder string
}

// SceneGroup is every version of one descriptor/task/extension in one folder.
type SceneGroup struct {
	Folder     string
	Descriptor string
	Task       string
	Extension  string
	Versions   []int
	// LatestFile is the file holding the highest version.
	LatestFile collector.FileInfo
}

// Latest returns the highest version in the group.
func (g SceneGroup) Latest() int {
	if len(g.Versions) == 0 {
		return 0
	}
	return g.Versions[len(g.Versions)-1]
}

// ListExecution contains list workflow outputs.
type ListExecution struct {
	RootDir         string
	FileCount       int
	CollectDuration time.Duration
	Groups          []SceneGroup
	// Unversioned holds files that do not follow the naming convention.
	Unversioned []string
}

// InitRequest contains inputs for the init workflow.
type InitRequest struct {
	Dir   string
	Force bool
}

// InitExecution contains init workflow outputs.
type InitExecution struct {
	ConfigPath string
	Config     *config.Config
}

// ErrConfigExists is returned by RunInit when a config file is already present.
var ErrConfigExists = errors.New("config file already exists")

// RunSave saves the open document under the scene's current path.
func (s *Service) RunSave(req SceneRequest) (SaveExecution, error) {
	startTime := time.Now()

	sf, project, err := s.openScene(req)
	if err != nil {
		return SaveExecution{}, err
	}

	execution := SaveExecution{
		Project:         project,
		Scene:           sf,
		PreviousVersion: sf.Version(),
		Version:         sf.Version(),
		DryRun:          req.DryRun,
	}

	if req.DryRun {
		execution.Path = sf.Path()
	} else {
		path, err := sf.Save()
		if err != nil {
			return SaveExecution{}, fmt.Errorf("failed to save scene: %w", err)
		}
		execution.Path = path
	}

	execution.Duration = time.Since(startTime)
	return execution, nil
}

// RunIncrement saves the open document under the next available version.
func (s *Service) RunIncrement(req SceneRequest) (SaveExecution, error) {
	startTime := time.Now()

	sf, project, err := s.openScene(req)
	if err != nil {
		return SaveExecution{}, err
	}

	execution := SaveExecution{
		Project:         project,
		Scene:           sf,
		PreviousVersion: sf.Version(),
		DryRun:          req.DryRun,
	}

	if req.DryRun {
		next, err := sf.NextAvailableVersion()
		if err != nil {
			return SaveExecution{}, fmt.Errorf("failed to scan scene folder: %w", err)
		}
		if err := sf.SetVersion(next); err != nil {
			return SaveExecution{}, err
		}
		execution.Path = sf.Path()
	} else {
		path, err := sf.SaveIncrement()
		if err != nil {
			return SaveExecution{}, fmt.Errorf("failed to save increment: %w", err)
		}
		execution.Path = path
	}

	execution.Version = sf.Version()
	execution.Duration = time.Since(startTime)
	return execution, nil
}

// RunNext reports the next available version without writing anything.
func (s *Service) RunNext(req SceneRequest) (NextExecution, error) {
	sf, _, err := s.openScene(req)
	if err != nil {
		return NextExecution{}, err
	}

	existing, err := sf.ExistingVersions()
	if err != nil {
		return NextExecution{}, fmt.Errorf("failed to scan scene folder: %w", err)
	}

	next := 1
	if len(existing) > 0 {
		next = existing[len(existing)-1] + 1
	}

	return NextExecution{
		Scene:    sf,
		Pattern:  sf.ScanPattern(),
		Existing: existing,
		Next:     next,
	}, nil
}

// RunInfo parses a scene path, or the open document, strictly.
func (s *Service) RunInfo(req SceneRequest) (InfoExecution, error) {
	path := req.Path
	if path == "" {
		path = req.Document
	}
	if path == "" {
		return InfoExecution{}, errors.New("no scene path or open document given")
	}

	sf, err := scenefile.Parse(path)
	if err != nil {
		return InfoExecution{}, err
	}

	return InfoExecution{Scene: sf}, nil
}

// RunList groups every versioned scene under a folder tree.
func (s *Service) RunList(req ListRequest) (ListExecution, error) {
	rootDir := req.Folder
	if rootDir == "" {
		project, err := s.loadProject()
		if err != nil {
			return ListExecution{}, err
		}
		rootDir = project.ScenesFolder()
	}

	rootDir, err := validateAndResolvePath(rootDir)
	if err != nil {
		return ListExecution{}, err
	}

	startTime := time.Now()
	c := collector.New(collector.Options{
		SkipFiles:    defaultSkipFiles,
		SkipDirs:     defaultSkipDirs,
		SkipPatterns: []string{".*"},
	})

	files, err := c.Collect(rootDir)
	if err != nil {
		return ListExecution{}, fmt.Errorf("failed to collect files: %w", err)
	}

	execution := ListExecution{
		RootDir:         rootDir,
		FileCount:       len(files),
		CollectDuration: time.Since(startTime),
	}

	groups := make(map[string]*SceneGroup)
	latest := make(map[string]int)
	for _, f := range files {
		sf, err := scenefile.Parse(f.Path)
		if err != nil {
			s.logger.Debug("not a versioned scene", "path", f.Path, "error", err)
			execution.Unversioned = append(execution.Unversioned, f.Path)
			continue
		}

		key := strings.Join([]string{f.Dir, sf.Descriptor(), sf.Task(), sf.Extension()}, "\x00")
		group, ok := groups[key]
		if !ok {
			group = &SceneGroup{
				Folder:     f.Dir,
				Descriptor: sf.Descriptor(),
				Task:       sf.Task(),
				Extension:  sf.Extension(),
			}
			groups[key] = group
		}
		group.Versions = append(group.Versions, sf.Version())
		if sf.Version() > latest[key] {
			latest[key] = sf.Version()
			group.LatestFile = f
		}
	}

	for _, group := range groups {
		sort.Ints(group.Versions)
		execution.Groups = append(execution.Groups, *group)
	}
	sort.Slice(execution.Groups, func(i, j int) bool {
		a, b := execution.Groups[i], execution.Groups[j]
		if a.Folder != b.Folder {
			return a.Folder < b.Folder
		}
		if a.Descriptor != b.Descriptor {
			return a.Descriptor < b.Descriptor
		}
		if a.Task != b.Task {
			return a.Task < b.Task
		}
		return a.Extension < b.Extension
	})
	sort.Strings(execution.Unversioned)

	return execution, nil
}

// RunInit writes a project config holding the effective defaults at the
// target directory: built-in defaults, the user config, then any config
// found from there upwards.
func (s *Service) RunInit(req InitRequest) (InitExecution, error) {
	dir, err := validateAndResolvePath(req.Dir)
	if err != nil {
		return InitExecution{}, err
	}

	configPath := filepath.Join(dir, config.ProjectConfigFile)
	if _, err := os.Stat(configPath); err == nil && !req.Force {
		return InitExecution{}, fmt.Errorf("%w: %s", ErrConfigExists, configPath)
	}

	project, err := s.loadProjectFrom(dir)
	if err != nil {
		return InitExecution{}, err
	}

	cfg := project.Config
	if err := cfg.SaveToFile(configPath); err != nil {
		return InitExecution{}, err
	}
	s.logger.Debug("wrote project config", "path", configPath)

	return InitExecution{ConfigPath: configPath, Config: cfg}, nil
}

func (s *Service) loadProject() (*config.Project, error) {
	workDir := s.workDir
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve working directory: %w", err)
		}
		workDir = cwd
	}

	return s.loadProjectFrom(workDir)
}

func (s *Service) loadProjectFrom(startDir string) (*config.Project, error) {
	project, err := config.NewLoader(s.logger, s.configPath).Load(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return project, nil
}

// openScene builds the scene for req: explicit path, else open document,
// else project defaults; then applies the form fields.
func (s *Service) openScene(req SceneRequest) (*scenefile.SceneFile, *config.Project, error) {
	project, err := s.loadProject()
	if err != nil {
		return nil, nil, err
	}

	host := document.NewFileHost(req.Document, s.logger)

	sf, err := scenefile.New(req.Path, scenefile.Options{
		CurrentDocument: s.currentDocument(host),
		Host:            host,
		Defaults: scenefile.Defaults{
			FolderPath: project.ScenesFolder(),
			Descriptor: project.Config.Descriptor,
			Task:       project.Config.Task,
			Extension:  project.Config.Extension,
		},
		Logger: s.logger,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := applyFields(sf, req.Fields); err != nil {
		return nil, nil, err
	}

	return sf, project, nil
}

// currentDocument hides an open document whose name does not follow the
// convention, so that a scratch file can still be saved with defaults.
func (s *Service) currentDocument(host document.Host) func() (string, error) {
	return func() (string, error) {
		path, err := host.CurrentDocumentPath()
		if err != nil || path == "" {
			return path, err
		}

		if _, err := scenefile.Parse(path); errors.Is(err, scenefile.ErrMalformedName) {
			s.logger.Warn("open document is not a versioned scene, using defaults", "path", path)
			return "", nil
		}
		return path, nil
	}
}

func applyFields(sf *scenefile.SceneFile, fields Fields) error {
	if fields.FolderPath != nil {
		folder, err := filepath.Abs(*fields.FolderPath)
		if err != nil {
			return fmt.Errorf("cannot resolve folder: %w", err)
		}
		sf.SetFolderPath(folder)
	}

	if fields.Descriptor != nil {
		descriptor := *fields.Descriptor
		if fields.Sanitize {
			descriptor = sanitizer.SanitizeField(descriptor)
		}
		if err := sf.SetDescriptor(descriptor); err != nil {
			return err
		}
	}

	if fields.Task != nil {
		task := *fields.Task
		if fields.Sanitize {
			task = sanitizer.SanitizeField(task)
		}
		if err := sf.SetTask(task); err != nil {
			return err
		}
	}

	if fields.Version != nil {
		if err := sf.SetVersion(*fields.Version); err != nil {
			return err
		}
	}

	if fields.Extension != nil {
		if err := sf.SetExtension(sanitizer.NormalizeExtension(*fields.Extension)); err != nil {
			return err
		}
	}

	return nil
}

func validateAndResolvePath(targetDir string) (string, error) {
	if targetDir == "" {
		targetDir = "."
	}

	info, err := os.Stat(targetDir)
	if err != nil {
		return "", fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", targetDir)
	}

	absPath, err := filepath.Abs(targetDir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path: %w", err)
	}

	return absPath, nil
}
