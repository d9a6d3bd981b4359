package mkdirp

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/mkdirp/pkg/mkdirp/filesystem"
)

// DryRunFS is a filesystem wrapper that simulates directory creation
// without writing to the underlying filesystem. Reads fall through to the
// base unless the path was created during the dry run.
//
// Simulated directories are keyed by absolute path, so "a", "./a" and
// "$PWD/a" name the same directory while "a" and "/a" do not.
type DryRunFS struct {
	base  filesystem.StatFS
	memFS *filesystem.TestFileSystem
}

// NewDryRunFS creates a new DryRunFS over base.
func NewDryRunFS(base filesystem.StatFS) *DryRunFS {
	return &DryRunFS{
		base:  base,
		memFS: filesystem.NewTestFileSystem(),
	}
}

// overlayKey resolves name against the working directory.
func overlayKey(name string) string {
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return filepath.Clean(name)
}

// Stat returns a FileInfo describing the named file.
func (d *DryRunFS) Stat(name string) (fs.FileInfo, error) {
	if key := overlayKey(name); d.memFS.Has(key) {
		return d.memFS.Stat(key)
	}
	return d.base.Stat(name)
}

// Mkdir records a directory as created. It fails the way mkdir(2) would
// against the combined view of base and simulated directories.
func (d *DryRunFS) Mkdir(name string, perm fs.FileMode) error {
	if _, err := d.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent, err := d.Stat(filepath.Dir(name))
	if err != nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
	}
	if !parent.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
	}
	d.memFS.AddDir(overlayKey(name), perm)
	return nil
}

// Chmod changes the mode of a simulated directory. Paths that only exist
// in the base are left untouched.
func (d *DryRunFS) Chmod(name string, perm fs.FileMode) error {
	if key := overlayKey(name); d.memFS.Has(key) {
		return d.memFS.Chmod(key, perm)
	}
	_, err := d.base.Stat(name)
	return err
}

// Simulated returns the absolute paths of the directories created during
// the dry run, sorted.
func (d *DryRunFS) Simulated() []string {
	dirs := d.memFS.Directories()
	for i, dir := range dirs {
		dirs[i] = string(filepath.Separator) + dir
	}
	return dirs
}
