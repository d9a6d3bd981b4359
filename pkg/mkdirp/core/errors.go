package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds of a directory walk.
// Match them with errors.Is against a *PathError.
var (
	ErrEmptyPath      = errors.New("empty path")
	ErrPathTooLong    = errors.New("path too long")
	ErrNotDirectory   = errors.New("not a directory")
	ErrCreationFailed = errors.New("directory creation failed")
)

// PathError reports which path a walk stopped at and why.
type PathError struct {
	Kind error // one of the sentinels above
	Path string
	Err  error // underlying OS error, if any
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *PathError) Is(target error) bool {
	return target == e.Kind
}

// NewPathError creates a PathError of the given kind.
func NewPathError(kind error, path string, cause error) *PathError {
	return &PathError{Kind: kind, Path: path, Err: cause}
}
