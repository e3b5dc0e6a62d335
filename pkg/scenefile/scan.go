package scenefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"smartsave/pkg/collector"
	"smartsave/pkg/sanitizer"
)

// Filesystem is the directory access a SceneFile needs.
type Filesystem interface {
	// ListDir returns the names of the files directly inside dir.
	ListDir(dir string) ([]string, error)
	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error
}

type osFilesystem struct {
	collector *collector.Collector
}

// NewOSFilesystem returns a Filesystem backed by the local disk. Hidden
// files, including in-flight temporary saves, are not listed.
func NewOSFilesystem() Filesystem {
	return osFilesystem{
		collector: collector.New(collector.Options{SkipPatterns: []string{".*"}}),
	}
}

func (f osFilesystem) ListDir(dir string) ([]string, error) {
	return f.collector.Names(dir)
}

func (osFilesystem) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// ScanPattern is the glob matching every version of this descriptor, task
// and extension: "{descriptor}_{task}_v*{extension}".
func (sf *SceneFile) ScanPattern() string {
	return escapeMeta(sf.prefix()) + "v*" + escapeMeta(sf.ext)
}

func (sf *SceneFile) prefix() string {
	return sf.descriptor + sanitizer.Separator + sf.task + sanitizer.Separator
}

// ExistingVersions returns the versions of this descriptor, task and
// extension found directly inside FolderPath, in ascending order.
// A folder that does not exist yet holds no versions.
func (sf *SceneFile) ExistingVersions() ([]int, error) {
	names, err := sf.fs.ListDir(sf.folderPath)
	if errors.Is(err, fs.ErrNotExist) {
		sf.logger.Debug("scene folder does not exist yet", "folder", sf.folderPath)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list scene folder: %w", err)
	}

	pattern := sf.ScanPattern()
	var versions []int
	for _, name := range names {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		if !matched {
			continue
		}

		version, ok := sf.versionOf(name)
		if !ok {
			sf.logger.Debug("ignoring file with unreadable version", "file", name)
			continue
		}
		versions = append(versions, version)
	}

	slices.Sort(versions)
	return versions, nil
}

// NextAvailableVersion returns one more than the highest existing version,
// or 1 when there is none. It does not modify sf.
func (sf *SceneFile) NextAvailableVersion() (int, error) {
	versions, err := sf.ExistingVersions()
	if err != nil {
		return 0, err
	}
	if len(versions) == 0 {
		return 1, nil
	}
	return versions[len(versions)-1] + 1, nil
}

// versionOf reads the number after the last "_v" of a matched filename.
// The "_v" must be the one that ends the descriptor/task prefix.
func (sf *SceneFile) versionOf(name string) (int, bool) {
	stem := strings.TrimSuffix(name, sf.ext)

	idx := strings.LastIndex(stem, sanitizer.Separator+"v")
	if idx != len(sf.prefix())-len(sanitizer.Separator) {
		return 0, false
	}

	return parseDigits(stem[idx+len(sanitizer.Separator)+1:])
}

// escapeMeta backslash-escapes glob metacharacters.
func escapeMeta(s string) string {
	if !strings.ContainsAny(s, `*?[]{}\`) {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
