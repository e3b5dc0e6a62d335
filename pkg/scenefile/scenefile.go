// Package scenefile implements the versioned scene filename model:
// <descriptor>_<task>_v<version:03d><extension> inside a folder.
//
// A SceneFile is built from defaults, from an explicit path, or from the
// host's currently open document. It can compute the next unused version in
// its folder and save the open document under its own path, creating the
// folder tree when the host reports it missing.
package scenefile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"smartsave/pkg/document"
	"smartsave/pkg/sanitizer"
)

const (
	DefaultScenesDir  = "Scenes"
	DefaultDescriptor = "main"
	DefaultTask       = "model"
	DefaultVersion    = 1
	DefaultExtension  = ".ma"
)

// Defaults are the field values of a SceneFile built without a path.
// Zero fields fall back to the package defaults; an empty FolderPath falls
// back to <working directory>/Scenes.
type Defaults struct {
	FolderPath string
	Descriptor string
	Task       string
	Version    int
	Extension  string
}

// Options wires a SceneFile to its collaborators. All fields are optional.
type Options struct {
	// CurrentDocument reports the path of the open document, "" if none.
	CurrentDocument func() (string, error)
	// Host saves the open document. Save fails with ErrNoHost when nil.
	Host document.Host
	// FS lists folders and creates them. Defaults to the local disk.
	FS       Filesystem
	Defaults Defaults
	Logger   *slog.Logger
}

// SceneFile is the decomposed identity of one versioned scene file.
type SceneFile struct {
	folderPath string
	descriptor string
	task       string
	version    int
	ext        string

	host   document.Host
	fs     Filesystem
	logger *slog.Logger
}

// New builds a SceneFile. A non-empty path is parsed; otherwise the current
// document path is parsed when there is one; otherwise defaults are used.
func New(path string, opts Options) (*SceneFile, error) {
	sf := &SceneFile{
		host:   opts.Host,
		fs:     opts.FS,
		logger: opts.Logger,
	}
	if sf.fs == nil {
		sf.fs = NewOSFilesystem()
	}
	if sf.logger == nil {
		sf.logger = slog.Default()
	}

	if path == "" && opts.CurrentDocument != nil {
		current, err := opts.CurrentDocument()
		if err != nil {
			return nil, fmt.Errorf("query current document: %w", err)
		}
		path = current
	}

	if path == "" {
		sf.logger.Info("initialize with default properties")
		if err := sf.applyDefaults(opts.Defaults); err != nil {
			return nil, err
		}
		return sf, nil
	}

	if err := sf.parse(path); err != nil {
		return nil, err
	}
	return sf, nil
}

func (sf *SceneFile) applyDefaults(d Defaults) error {
	if d.FolderPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve project root: %w", err)
		}
		d.FolderPath = filepath.Join(cwd, DefaultScenesDir)
	}
	if d.Descriptor == "" {
		d.Descriptor = DefaultDescriptor
	}
	if d.Task == "" {
		d.Task = DefaultTask
	}
	if d.Version == 0 {
		d.Version = DefaultVersion
	}
	if d.Extension == "" {
		d.Extension = DefaultExtension
	}

	sf.SetFolderPath(d.FolderPath)
	if err := sf.SetDescriptor(d.Descriptor); err != nil {
		return err
	}
	if err := sf.SetTask(d.Task); err != nil {
		return err
	}
	if err := sf.SetVersion(d.Version); err != nil {
		return err
	}
	return sf.SetExtension(d.Extension)
}

func (sf *SceneFile) FolderPath() string { return sf.folderPath }
func (sf *SceneFile) Descriptor() string { return sf.descriptor }
func (sf *SceneFile) Task() string       { return sf.task }
func (sf *SceneFile) Version() int       { return sf.version }
func (sf *SceneFile) Extension() string  { return sf.ext }

// SetFolderPath sets the target folder. The value is stored as given.
func (sf *SceneFile) SetFolderPath(folder string) {
	sf.folderPath = folder
}

// SetDescriptor sets the descriptor, rejecting values that would make the
// rendered filename ambiguous.
func (sf *SceneFile) SetDescriptor(descriptor string) error {
	if err := sanitizer.ValidateField(descriptor); err != nil {
		return &InvalidFieldError{Field: "descriptor", Value: descriptor, Err: err}
	}
	sf.descriptor = descriptor
	return nil
}

// SetTask sets the task, with the same rules as SetDescriptor.
func (sf *SceneFile) SetTask(task string) error {
	if err := sanitizer.ValidateField(task); err != nil {
		return &InvalidFieldError{Field: "task", Value: task, Err: err}
	}
	sf.task = task
	return nil
}

// SetVersion sets the version, which must be at least 1.
func (sf *SceneFile) SetVersion(version int) error {
	if version < 1 {
		return &InvalidFieldError{Field: "version", Value: fmt.Sprint(version), Err: ErrVersionRange}
	}
	sf.version = version
	return nil
}

// SetExtension sets the extension, e.g. ".ma".
func (sf *SceneFile) SetExtension(ext string) error {
	if err := sanitizer.ValidateExtension(ext); err != nil {
		return &InvalidFieldError{Field: "extension", Value: ext, Err: err}
	}
	sf.ext = ext
	return nil
}

// Filename renders the current fields, e.g. "main_model_v001.ma".
// The version is padded to at least three digits and never truncated.
func (sf *SceneFile) Filename() string {
	return fmt.Sprintf("%s_%s_v%03d%s", sf.descriptor, sf.task, sf.version, sf.ext)
}

// Path is FolderPath joined with Filename.
func (sf *SceneFile) Path() string {
	return filepath.Join(sf.folderPath, sf.Filename())
}

func (sf *SceneFile) String() string {
	return sf.Path()
}
