package filesystem

import (
	"io/fs"
)

// StatFS reports the state of a path.
type StatFS interface {
	Stat(name string) (fs.FileInfo, error)
}

// WriteFS defines the mutations a directory walk performs.
type WriteFS interface {
	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(name string, perm fs.FileMode) error
	Chmod(name string, perm fs.FileMode) error
}

// FileSystem combines the stat and write operations the walk consumes.
type FileSystem interface {
	StatFS
	WriteFS
}
