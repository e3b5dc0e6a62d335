package scenefile

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrMalformedName matches any *MalformedNameError.
	ErrMalformedName = errors.New("malformed scene name")
	// ErrInvalidField matches any *InvalidFieldError.
	ErrInvalidField = errors.New("invalid scene field")
	// ErrVersionRange indicates a version below 1.
	ErrVersionRange = errors.New("version must be at least 1")
	// ErrNoHost indicates Save was called on a SceneFile without a document host.
	ErrNoHost = errors.New("no document host configured")
)

// MalformedNameError reports a path whose filename does not follow
// <descriptor>_<task>_v<digits><extension>.
type MalformedNameError struct {
	Path   string
	Reason string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("malformed scene name %q: %s", filepath.Base(e.Path), e.Reason)
}

// Is reports whether target is ErrMalformedName.
func (e *MalformedNameError) Is(target error) bool {
	return target == ErrMalformedName
}

// InvalidFieldError reports a rejected field assignment.
type InvalidFieldError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidField.
func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}
