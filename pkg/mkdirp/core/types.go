package core

import (
	"fmt"
	"io/fs"
)

// DirectoryState is the state of a single path as observed by Stat.
// It is derived fresh for every prefix and never cached.
type DirectoryState int

const (
	// StateAbsent means nothing exists at the path.
	StateAbsent DirectoryState = iota
	// StateDirectory means the path exists and is a directory.
	StateDirectory
	// StateNotDirectory means the path exists but is something else.
	StateNotDirectory
)

// String returns a human readable name for the state.
func (s DirectoryState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateDirectory:
		return "directory"
	case StateNotDirectory:
		return "not_directory"
	default:
		return fmt.Sprintf("DirectoryState(%d)", int(s))
	}
}

// StateOf maps the result of a Stat call to a DirectoryState.
// Any Stat error counts as absent; a failing Mkdir is what reports it.
func StateOf(info fs.FileInfo, err error) DirectoryState {
	if err != nil || info == nil {
		return StateAbsent
	}
	if info.IsDir() {
		return StateDirectory
	}
	return StateNotDirectory
}

// CreationMode is the permission bit-set applied to every directory
// created during one invocation.
type CreationMode fs.FileMode

const (
	ModeOwnerRead      CreationMode = 0o400
	ModeOwnerWrite     CreationMode = 0o200
	ModeOwnerExecute   CreationMode = 0o100
	ModeOwnerReadWrite              = ModeOwnerRead | ModeOwnerWrite
	ModeOwnerFull                   = ModeOwnerReadWrite | ModeOwnerExecute
)

// Perm returns the mode as fs.FileMode permission bits.
func (m CreationMode) Perm() fs.FileMode {
	return fs.FileMode(m).Perm()
}

// Octal renders the mode the way chmod(1) prints it, e.g. "700".
func (m CreationMode) Octal() string {
	return fmt.Sprintf("%o", uint32(m.Perm()))
}

// String returns the symbolic owner permissions, e.g. "rw-".
func (m CreationMode) String() string {
	b := []byte("---")
	if m&ModeOwnerRead != 0 {
		b[0] = 'r'
	}
	if m&ModeOwnerWrite != 0 {
		b[1] = 'w'
	}
	if m&ModeOwnerExecute != 0 {
		b[2] = 'x'
	}
	return string(b)
}
