// Package document models the hosting application's open document: which
// file is currently open and how to save it under a new name.
package document

import (
	"errors"
	"fmt"
)

// ErrMissingDirectory matches any *MissingDirectoryError.
var ErrMissingDirectory = errors.New("missing directory")

// MissingDirectoryError reports that a save target's parent directory does
// not exist. It is the only save failure callers may recover from by
// creating directories.
type MissingDirectoryError struct {
	Dir string
	Err error
}

func (e *MissingDirectoryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("missing directory %s", e.Dir)
	}
	return fmt.Sprintf("missing directory %s: %v", e.Dir, e.Err)
}

func (e *MissingDirectoryError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMissingDirectory.
func (e *MissingDirectoryError) Is(target error) bool {
	return target == ErrMissingDirectory
}

// Host is the document-management facility of the hosting application.
type Host interface {
	// CurrentDocumentPath returns the path of the open document, or "" when
	// the document has never been saved.
	CurrentDocumentPath() (string, error)
	// SaveDocumentAs writes the open document to path. It returns a
	// *MissingDirectoryError when the parent directory of path is missing.
	SaveDocumentAs(path string) error
}
