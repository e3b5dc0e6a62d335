// Package collector lists the files of a scenes folder, either directly
// inside one directory or across a whole tree.
package collector

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// FileInfo holds metadata about a file.
type FileInfo struct {
	Path    string    // Full path to the file
	Dir     string    // Directory containing the file
	Name    string    // Filename
	Size    int64     // File size in bytes
	ModTime time.Time // Modification time
}

// Options configures the collector behavior.
type Options struct {
	// SkipFiles is a list of exact filenames to skip.
	SkipFiles []string
	// SkipDirs is a list of directory names not to descend into.
	SkipDirs []string
	// SkipPatterns are glob patterns matched against filenames, e.g. ".*".
	SkipPatterns []string
}

// Collector collects file metadata from scene folders.
type Collector struct {
	skipFiles    map[string]bool
	skipDirs     map[string]bool
	skipPatterns []string
}

// New creates a new Collector with the given options.
// Invalid skip patterns are dropped.
func New(opts Options) *Collector {
	c := &Collector{
		skipFiles: make(map[string]bool),
		skipDirs:  make(map[string]bool),
	}

	for _, f := range opts.SkipFiles {
		c.skipFiles[f] = true
	}
	for _, d := range opts.SkipDirs {
		c.skipDirs[d] = true
	}
	for _, p := range opts.SkipPatterns {
		if doublestar.ValidatePattern(p) {
			c.skipPatterns = append(c.skipPatterns, p)
		}
	}

	return c
}

func (c *Collector) skipFile(name string) bool {
	if c.skipFiles[name] {
		return true
	}
	for _, p := range c.skipPatterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Collect walks the directory tree and collects metadata for all files.
func (c *Collector) Collect(rootDir string) ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != rootDir && c.skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || c.skipFile(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		files = append(files, FileInfo{
			Path:    path,
			Dir:     filepath.Dir(path),
			Name:    info.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// CollectFromDir collects files only from a specific directory (non-recursive).
func (c *Collector) CollectFromDir(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		if c.skipFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, err
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(dir, entry.Name()),
			Dir:     dir,
			Name:    info.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

// Names returns the filenames directly inside dir.
func (c *Collector) Names(dir string) ([]string, error) {
	files, err := c.CollectFromDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names, nil
}
