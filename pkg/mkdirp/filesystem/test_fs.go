package filesystem

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"testing"
	"testing/fstest"
)

// Call records a single mutation made against a TestFileSystem.
type Call struct {
	Op   string // "mkdir" or "chmod"
	Path string
	Perm fs.FileMode
}

// TestFileSystem extends fstest.MapFS to implement FileSystem.
// It records every mutation and can be told to fail Mkdir for given paths.
type TestFileSystem struct {
	fstest.MapFS
	calls    []Call
	failures map[string]error
}

// NewTestFileSystem creates a new, empty test filesystem
func NewTestFileSystem() *TestFileSystem {
	return NewTestFileSystemFromMap(make(fstest.MapFS))
}

// NewTestFileSystemFromMap creates a test filesystem from an existing map
func NewTestFileSystemFromMap(files map[string]*fstest.MapFile) *TestFileSystem {
	return &TestFileSystem{
		MapFS:    files,
		failures: make(map[string]error),
	}
}

// clean maps OS-style names onto MapFS keys: a leading "/" is dropped,
// repeated and trailing separators collapse, and the root becomes ".".
func clean(name string) string {
	name = path.Clean("/" + name)
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}

// FailMkdir makes every later Mkdir of name return err.
func (tfs *TestFileSystem) FailMkdir(name string, err error) {
	tfs.failures[clean(name)] = err
}

// Calls returns the mutations made so far, in order.
func (tfs *TestFileSystem) Calls() []Call {
	out := make([]Call, len(tfs.calls))
	copy(out, tfs.calls)
	return out
}

// Stat implements StatFS
func (tfs *TestFileSystem) Stat(name string) (fs.FileInfo, error) {
	return tfs.MapFS.Stat(clean(name))
}

// Mkdir implements WriteFS with the same preconditions as mkdir(2):
// the parent must be a directory and the name must not exist.
func (tfs *TestFileSystem) Mkdir(name string, perm fs.FileMode) error {
	key := clean(name)
	tfs.calls = append(tfs.calls, Call{Op: "mkdir", Path: name, Perm: perm})

	if err, ok := tfs.failures[key]; ok {
		return &fs.PathError{Op: "mkdir", Path: name, Err: err}
	}
	if _, err := tfs.MapFS.Stat(key); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent, err := tfs.MapFS.Stat(path.Dir(key))
	if err != nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
	}
	if !parent.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
	}

	tfs.AddDir(key, perm)
	return nil
}

// Chmod implements WriteFS
func (tfs *TestFileSystem) Chmod(name string, perm fs.FileMode) error {
	key := clean(name)
	tfs.calls = append(tfs.calls, Call{Op: "chmod", Path: name, Perm: perm})

	file, ok := tfs.MapFS[key]
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
	}
	file.Mode = file.Mode.Type() | perm.Perm()
	return nil
}

// Has reports whether name was stored explicitly, as opposed to being
// synthesized by fstest.MapFS as the parent of a stored entry.
func (tfs *TestFileSystem) Has(name string) bool {
	_, ok := tfs.MapFS[clean(name)]
	return ok
}

// AddDir stores a directory entry without checking the parent or recording a call.
func (tfs *TestFileSystem) AddDir(name string, perm fs.FileMode) {
	tfs.MapFS[clean(name)] = &fstest.MapFile{Mode: fs.ModeDir | perm.Perm()}
}

// Directories returns every explicitly stored directory, sorted.
func (tfs *TestFileSystem) Directories() []string {
	var dirs []string
	for name, file := range tfs.MapFS {
		if file.Mode.IsDir() {
			dirs = append(dirs, name)
		}
	}
	sort.Strings(dirs)
	return dirs
}

// TestHelper provides utilities for tests that drive a TestFileSystem
type TestHelper struct {
	t  *testing.T
	fs *TestFileSystem
}

// NewTestHelper creates a new test helper with a fresh filesystem
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t, fs: NewTestFileSystem()}
}

// FileSystem returns the test filesystem
func (th *TestHelper) FileSystem() *TestFileSystem {
	return th.fs
}

// Dir stores a directory entry without recording a call.
func (th *TestHelper) Dir(name string) {
	th.fs.AddDir(name, 0o755)
}

// File stores a regular file without recording a call.
func (th *TestHelper) File(name string) {
	th.fs.MapFS[clean(name)] = &fstest.MapFile{Data: []byte(name), Mode: 0o644}
}

// AssertDir fails the test unless name exists as a directory
func (th *TestHelper) AssertDir(name string) {
	th.t.Helper()
	info, err := th.fs.Stat(name)
	if err != nil {
		th.t.Errorf("Expected directory %s to exist: %v", name, err)
		return
	}
	if !info.IsDir() {
		th.t.Errorf("Expected %s to be a directory, got mode %v", name, info.Mode())
	}
}

// AssertNotExists fails the test if name exists
func (th *TestHelper) AssertNotExists(name string) {
	th.t.Helper()
	if _, err := th.fs.Stat(name); err == nil {
		th.t.Errorf("Expected %s to not exist, but it does", name)
	}
}

// AssertNoMutations fails the test if any Mkdir or Chmod was made
func (th *TestHelper) AssertNoMutations() {
	th.t.Helper()
	if calls := th.fs.Calls(); len(calls) != 0 {
		th.t.Errorf("Expected no mutations, got %v", calls)
	}
}
