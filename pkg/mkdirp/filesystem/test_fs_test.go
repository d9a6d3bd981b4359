package filesystem_test

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mkdirp/pkg/mkdirp/filesystem"
)

func TestTestFileSystem(t *testing.T) {
	t.Run("Mkdir requires the parent", func(t *testing.T) {
		tfs := filesystem.NewTestFileSystem()

		err := tfs.Mkdir("a/b", 0o700)
		assert.True(t, errors.Is(err, fs.ErrNotExist))

		require.NoError(t, tfs.Mkdir("a", 0o700))
		require.NoError(t, tfs.Mkdir("a/b", 0o700))
		assert.Equal(t, []string{"a", "a/b"}, tfs.Directories())
	})

	t.Run("Mkdir refuses existing names", func(t *testing.T) {
		th := filesystem.NewTestHelper(t)
		th.File("f")

		err := th.FileSystem().Mkdir("f", 0o700)
		assert.True(t, errors.Is(err, fs.ErrExist))
	})

	t.Run("Mkdir under a file", func(t *testing.T) {
		th := filesystem.NewTestHelper(t)
		th.File("f")

		assert.Error(t, th.FileSystem().Mkdir("f/child", 0o700))
		th.AssertNotExists("f/child")
	})

	t.Run("absolute and trailing-separator names", func(t *testing.T) {
		th := filesystem.NewTestHelper(t)
		tfs := th.FileSystem()

		require.NoError(t, tfs.Mkdir("/tmp", 0o755))
		require.NoError(t, tfs.Mkdir("/tmp/a/", 0o755))
		th.AssertDir("/tmp/a")
		th.AssertDir("tmp/a")
		th.AssertDir("/")
	})

	t.Run("injected failure", func(t *testing.T) {
		tfs := filesystem.NewTestFileSystem()
		tfs.FailMkdir("full", syscall.ENOSPC)

		err := tfs.Mkdir("full", 0o700)
		assert.True(t, errors.Is(err, syscall.ENOSPC))
		assert.Empty(t, tfs.Directories())
	})

	t.Run("Chmod keeps the directory bit", func(t *testing.T) {
		th := filesystem.NewTestHelper(t)
		tfs := th.FileSystem()
		require.NoError(t, tfs.Mkdir("d", 0o700))
		require.NoError(t, tfs.Chmod("d", 0o400))

		info, err := tfs.Stat("d")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, fs.FileMode(0o400), info.Mode().Perm())

		assert.Error(t, tfs.Chmod("missing", 0o400))
	})

	t.Run("records calls", func(t *testing.T) {
		th := filesystem.NewTestHelper(t)
		th.Dir("existing")
		th.AssertNoMutations()

		tfs := th.FileSystem()
		require.NoError(t, tfs.Mkdir("existing/new", 0o600))
		require.NoError(t, tfs.Chmod("existing/new", 0o600))

		assert.Equal(t, []filesystem.Call{
			{Op: "mkdir", Path: "existing/new", Perm: 0o600},
			{Op: "chmod", Path: "existing/new", Perm: 0o600},
		}, tfs.Calls())
	})
}
