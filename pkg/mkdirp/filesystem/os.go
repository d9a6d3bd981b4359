package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystem using the OS filesystem. Names are
// passed to the OS unchanged: relative names resolve against the working
// directory, absolute names are used as they are.
type OSFileSystem struct{}

// NewOSFileSystem creates an OS-backed filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat implements StatFS
func (osfs *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Mkdir implements WriteFS
func (osfs *OSFileSystem) Mkdir(name string, perm fs.FileMode) error {
	return os.Mkdir(name, perm)
}

// Chmod implements WriteFS
func (osfs *OSFileSystem) Chmod(name string, perm fs.FileMode) error {
	return os.Chmod(name, perm)
}
