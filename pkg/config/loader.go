package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file.
	ProjectConfigFile = "smartsave.yaml"
	// WorkspaceMarker marks a Maya project root even without a config file.
	WorkspaceMarker = "workspace.mel"
	// UserConfigDir is the directory for user-level config, under the home directory.
	UserConfigDir = ".config/smartsave"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
)

// Project is a resolved project root with its effective configuration.
type Project struct {
	// Root is the project root directory.
	Root string
	// ConfigPath is the project config file in effect, "" if none.
	ConfigPath string
	Config     *Config
}

// ScenesFolder returns the absolute scenes folder of the project.
func (p *Project) ScenesFolder() string {
	if filepath.IsAbs(p.Config.ScenesDir) {
		return filepath.Clean(p.Config.ScenesDir)
	}
	return filepath.Join(p.Root, p.Config.ScenesDir)
}

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger       *slog.Logger
	explicitPath string
}

// NewLoader creates a new configuration loader. A non-empty explicitPath
// replaces project config discovery.
func NewLoader(logger *slog.Logger, explicitPath string) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, explicitPath: explicitPath}
}

// Load resolves the project for startDir with layered precedence:
// 1. Default config
// 2. User config (~/.config/smartsave/config.yaml)
// 3. Project config (explicit path, or smartsave.yaml in startDir or a parent)
//
// The project root is the directory holding the project config, else the
// nearest directory holding workspace.mel, else startDir.
func (l *Loader) Load(startDir string) (*Project, error) {
	startDir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()

	userConfigPath := l.userConfigPath()
	if userConfigPath != "" {
		if userConfig, err := LoadFromFile(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
			config.Merge(userConfig)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	project := &Project{Config: config}

	projectConfigPath := l.explicitPath
	if projectConfigPath == "" {
		projectConfigPath = findUp(startDir, ProjectConfigFile)
	}

	if projectConfigPath != "" {
		projectConfig, err := LoadFromFile(projectConfigPath)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
		config.Merge(projectConfig)

		absConfigPath, err := filepath.Abs(projectConfigPath)
		if err != nil {
			return nil, err
		}
		project.ConfigPath = absConfigPath
		project.Root = filepath.Dir(absConfigPath)
	} else {
		l.logger.Debug("No project config found")
		if marker := findUp(startDir, WorkspaceMarker); marker != "" {
			project.Root = filepath.Dir(marker)
			l.logger.Debug("Detected workspace root", slog.String("path", project.Root))
		} else {
			project.Root = startDir
			l.logger.Debug("Using start directory as project root", slog.String("path", startDir))
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// userConfigPath returns the path to the user config file.
func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findUp searches for name in dir and its parents.
func findUp(dir, name string) string {
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
