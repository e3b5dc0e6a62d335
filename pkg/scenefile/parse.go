package scenefile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"smartsave/pkg/sanitizer"
)

// Parse decomposes path into a SceneFile. It fails with a
// *MalformedNameError unless the filename is exactly three
// underscore-separated fields, the last being "v" followed by digits.
// The returned SceneFile has no document host.
func Parse(path string) (*SceneFile, error) {
	sf := &SceneFile{
		fs:     NewOSFilesystem(),
		logger: slog.Default(),
	}
	if err := sf.parse(path); err != nil {
		return nil, err
	}
	return sf, nil
}

// parse fills every field from path or leaves sf untouched on error.
func (sf *SceneFile) parse(path string) error {
	if path == "" {
		return &MalformedNameError{Path: path, Reason: "empty path"}
	}

	folder, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("resolve scene folder: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	parts := strings.Split(stem, sanitizer.Separator)
	if len(parts) != 3 {
		return &MalformedNameError{
			Path:   path,
			Reason: fmt.Sprintf("expected 3 %q-separated fields, got %d", sanitizer.Separator, len(parts)),
		}
	}

	version, ok := parseVersionToken(parts[2])
	if !ok {
		return &MalformedNameError{
			Path:   path,
			Reason: fmt.Sprintf("version token %q is not \"v\" followed by a positive number", parts[2]),
		}
	}

	descriptor, task := parts[0], parts[1]
	if err := sanitizer.ValidateField(descriptor); err != nil {
		return &MalformedNameError{Path: path, Reason: "descriptor: " + err.Error()}
	}
	if err := sanitizer.ValidateField(task); err != nil {
		return &MalformedNameError{Path: path, Reason: "task: " + err.Error()}
	}
	if err := sanitizer.ValidateExtension(ext); err != nil {
		return &MalformedNameError{Path: path, Reason: "extension: " + err.Error()}
	}

	sf.folderPath = folder
	sf.descriptor = descriptor
	sf.task = task
	sf.version = version
	sf.ext = ext

	return nil
}

// parseVersionToken accepts "v" followed by ASCII digits with a value >= 1.
func parseVersionToken(token string) (int, bool) {
	digits, ok := strings.CutPrefix(token, "v")
	if !ok {
		return 0, false
	}

	version, ok := parseDigits(digits)
	if !ok || version < 1 {
		return 0, false
	}
	return version, true
}

// parseDigits parses a non-empty, sign-free run of ASCII digits.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
