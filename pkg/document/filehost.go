package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// FileHost is a Host whose open document is a file on local disk.
// An empty current path stands for an untitled document, which saves as an
// empty file. After a successful save the saved file becomes the open
// document, as with "save as" in an editor.
type FileHost struct {
	current string
	logger  *slog.Logger
}

// NewFileHost creates a FileHost with current as the open document.
func NewFileHost(current string, logger *slog.Logger) *FileHost {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileHost{current: current, logger: logger}
}

// CurrentDocumentPath returns the open document path.
func (h *FileHost) CurrentDocumentPath() (string, error) {
	if h.current == "" {
		return "", nil
	}

	abs, err := filepath.Abs(h.current)
	if err != nil {
		return "", fmt.Errorf("resolve document path: %w", err)
	}
	return abs, nil
}

// SaveDocumentAs copies the open document to path through a temporary file
// in the target directory, then renames it into place.
func (h *FileHost) SaveDocumentAs(path string) error {
	dir := filepath.Dir(path)

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return &MissingDirectoryError{Dir: dir, Err: err}
	}
	if err != nil {
		return fmt.Errorf("stat target directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("target parent is not a directory: %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := h.copyCurrent(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}

	h.logger.Debug("saved document", "from", h.current, "to", path)
	h.current = path

	return nil
}

func (h *FileHost) copyCurrent(dst io.Writer) error {
	if h.current == "" {
		return nil
	}

	src, err := os.Open(h.current)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy document: %w", err)
	}
	return nil
}
