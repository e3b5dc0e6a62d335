package scenefile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"smartsave/pkg/document"
)

// fakeHost records SaveDocumentAs calls. Saves write the target file when its
// directory exists and report a MissingDirectoryError otherwise, unless
// failWith is set.
type fakeHost struct {
	current  string
	failWith error
	saves    []string
}

func (h *fakeHost) CurrentDocumentPath() (string, error) {
	return h.current, nil
}

func (h *fakeHost) SaveDocumentAs(path string) error {
	h.saves = append(h.saves, path)
	if h.failWith != nil {
		return h.failWith
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return &document.MissingDirectoryError{Dir: dir, Err: err}
	}
	return os.WriteFile(path, []byte("scene"), 0o644)
}

// countingFS wraps the local disk and counts MkdirAll calls.
type countingFS struct {
	Filesystem
	mkdirs   int
	mkdirErr error
}

func newCountingFS() *countingFS {
	return &countingFS{Filesystem: NewOSFilesystem()}
}

func (f *countingFS) MkdirAll(dir string) error {
	f.mkdirs++
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	return f.Filesystem.MkdirAll(dir)
}

// listFS returns a fixed listing in the given order.
type listFS struct {
	names []string
	err   error
}

func (f listFS) ListDir(string) ([]string, error) { return f.names, f.err }
func (f listFS) MkdirAll(string) error            { return nil }

func newScene(t *testing.T, folder string, opts Options) *SceneFile {
	t.Helper()

	opts.Defaults.FolderPath = folder
	sf, err := New("", opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sf
}
