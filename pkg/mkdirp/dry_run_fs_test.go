package mkdirp

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mkdirp/pkg/mkdirp/filesystem"
)

func TestDryRunFS_Mkdir(t *testing.T) {
	base := filesystem.NewTestFileSystem()
	base.AddDir("existing", 0o755)
	dryRunFS := NewDryRunFS(base)

	require.NoError(t, dryRunFS.Mkdir("existing/new", 0o700))

	fi, err := dryRunFS.Stat("existing/new")
	assert.NoError(t, err)
	assert.True(t, fi.IsDir())

	// The base is untouched.
	_, err = base.Stat("existing/new")
	assert.Error(t, err)
	assert.Empty(t, base.Calls())

	abs, err := filepath.Abs("existing/new")
	require.NoError(t, err)
	assert.Equal(t, []string{abs}, dryRunFS.Simulated())
}

func TestDryRunFS_MkdirPreconditions(t *testing.T) {
	base := filesystem.NewTestFileSystem()
	base.AddDir("existing", 0o755)
	dryRunFS := NewDryRunFS(base)

	assert.ErrorIs(t, dryRunFS.Mkdir("existing", 0o700), fs.ErrExist)
	assert.ErrorIs(t, dryRunFS.Mkdir("missing/child", 0o700), fs.ErrNotExist)

	require.NoError(t, dryRunFS.Mkdir("sim", 0o700))
	assert.NoError(t, dryRunFS.Mkdir("sim/child", 0o700))
}

func TestDryRunFS_Chmod(t *testing.T) {
	base := filesystem.NewTestFileSystem()
	base.AddDir("existing", 0o755)
	dryRunFS := NewDryRunFS(base)

	require.NoError(t, dryRunFS.Mkdir("sim", 0o700))
	require.NoError(t, dryRunFS.Chmod("sim", 0o400))
	fi, err := dryRunFS.Stat("sim")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o400), fi.Mode().Perm())

	assert.NoError(t, dryRunFS.Chmod("existing", 0o400))
	fi, err = base.Stat("existing")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o755), fi.Mode().Perm())

	assert.Error(t, dryRunFS.Chmod("missing", 0o400))
}

func TestDryRunFS_WithPathCreator(t *testing.T) {
	base := filesystem.NewTestFileSystem()
	base.AddDir("root", 0o755)
	dryRunFS := NewDryRunFS(base)

	cfg := DefaultConfig()
	cfg.Parents = true
	cfg.DryRun = true
	pc := NewPathCreator(dryRunFS, cfg)

	result, err := pc.EnsureDirectory(context.Background(), "root/a/b")
	require.NoError(t, err)
	assert.Equal(t, []string{"root/a", "root/a/b"}, result.Created)
	assert.Equal(t, []string{"root"}, base.Directories())
	assert.Empty(t, base.Calls())
	assert.Len(t, dryRunFS.Simulated(), 2)
}

func TestDryRunFS_RelativeAndAbsoluteNames(t *testing.T) {
	base := filesystem.NewTestFileSystem()
	dryRunFS := NewDryRunFS(base)

	require.NoError(t, dryRunFS.Mkdir("zz", 0o700))

	_, err := dryRunFS.Stat("./zz")
	assert.NoError(t, err)
	_, err = dryRunFS.Stat("zz/")
	assert.NoError(t, err)
	_, err = dryRunFS.Stat("/zz")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, dryRunFS.Mkdir("/zz", 0o700))
	assert.Len(t, dryRunFS.Simulated(), 2)
}

func TestDryRunFS_MixedTargets(t *testing.T) {
	base := filesystem.NewTestFileSystem()
	cfg := DefaultConfig()
	cfg.Parents = true
	cfg.DryRun = true
	pc := NewPathCreator(base, cfg)

	// On disk "zz" and "/zz" are different directories unless the
	// working directory is "/", so both must be reported.
	result, err := pc.EnsureAll(context.Background(), []string{"zz/b", "/zz/c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"zz", "/zz", "zz/b", "/zz/c"}, result.Created)
	assert.Empty(t, base.Calls())
	assert.Empty(t, base.Directories())
}
