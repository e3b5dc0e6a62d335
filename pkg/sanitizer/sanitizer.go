// Package sanitizer validates and normalises the free-text fields of a
// versioned scene filename. Fields are joined with an underscore, so the
// separator itself is never allowed inside a field.
package sanitizer

import (
	"errors"
	"regexp"
	"strings"
)

// Separator joins descriptor, task and version token in a scene filename.
const Separator = "_"

var (
	// ErrEmptyField indicates a required field is empty.
	ErrEmptyField = errors.New("field is empty")
	// ErrSeparator indicates a field contains the field separator.
	ErrSeparator = errors.New("field contains the separator \"" + Separator + "\"")
	// ErrPathSeparator indicates a field contains a path separator.
	ErrPathSeparator = errors.New("field contains a path separator")
	// ErrExtension indicates an extension that is not a single ".suffix".
	ErrExtension = errors.New("extension must be a single suffix starting with \".\"")
)

var (
	// bracketsRegex matches parentheses, brackets, braces.
	bracketsRegex = regexp.MustCompile(`[()[\]{}]`)
	// specialCharsRegex matches any character that's not alphanumeric or hyphen.
	specialCharsRegex = regexp.MustCompile(`[^A-Za-z0-9\-]`)
	// multiHyphenRegex matches multiple consecutive hyphens.
	multiHyphenRegex = regexp.MustCompile(`-+`)
	// edgeHyphenRegex matches leading or trailing hyphens.
	edgeHyphenRegex = regexp.MustCompile(`^-+|-+$`)
)

// ValidateField checks a descriptor or task value.
func ValidateField(value string) error {
	switch {
	case value == "":
		return ErrEmptyField
	case strings.Contains(value, Separator):
		return ErrSeparator
	case strings.ContainsAny(value, `/\`):
		return ErrPathSeparator
	}

	return nil
}

// ValidateExtension checks a file extension. It must look like ".ma": one
// leading dot, at least one more character and no further dots. Without an
// extension a dot inside the task would be read back as one.
func ValidateExtension(ext string) error {
	switch {
	case ext == "":
		return ErrEmptyField
	case strings.ContainsAny(ext, `/\`):
		return ErrPathSeparator
	case strings.Contains(ext, Separator):
		return ErrSeparator
	case len(ext) < 2 || ext[0] != '.' || strings.Count(ext, ".") != 1:
		return ErrExtension
	}

	return nil
}

// SanitizeField converts free text into a valid field value:
// brackets are dropped, spaces, underscores and other special characters
// become hyphens, repeated hyphens collapse and edge hyphens are trimmed.
// Case is preserved. An input with nothing usable becomes "unnamed".
func SanitizeField(value string) string {
	name := bracketsRegex.ReplaceAllString(value, "")
	name = specialCharsRegex.ReplaceAllString(name, "-")
	name = multiHyphenRegex.ReplaceAllString(name, "-")
	name = edgeHyphenRegex.ReplaceAllString(name, "")

	if name == "" {
		name = "unnamed"
	}

	return name
}

// NormalizeExtension lowercases ext and adds the leading dot when missing.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}

	return "." + ext
}
