package mkdirp_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/mkdirp/pkg/mkdirp"
	"github.com/arthur-debert/mkdirp/pkg/mkdirp/core"
)

func TestPrefixes(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected []string
	}{
		{"absolute", "/tmp/a/b/c", []string{"/tmp", "/tmp/a", "/tmp/a/b", "/tmp/a/b/c"}},
		{"relative", "a/b/c", []string{"a", "a/b", "a/b/c"}},
		{"trailing separator", "a/b/", []string{"a", "a/b"}},
		{"single segment", "a", []string{"a"}},
		{"root", "/", []string{"/"}},
		{"top level absolute", "/a", []string{"/a"}},
		{"repeated separator", "a//b", []string{"a", "a/", "a//b"}},
		{"dot segments kept", "./a/../b", []string{".", "./a", "./a/..", "./a/../b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prefixes, err := mkdirp.Prefixes(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, prefixes)
		})
	}
}

func TestPlan(t *testing.T) {
	testCases := []struct {
		name     string
		targets  []string
		parents  bool
		expected []string
	}{
		{"single chain", []string{"/tmp/a/b"}, true, []string{"/tmp", "/tmp/a", "/tmp/a/b"}},
		{"shared prefix once", []string{"a/b", "a/c"}, true, []string{"a", "a/b", "a/c"}},
		{"depth before order", []string{"a/b/c", "x"}, true, []string{"a", "x", "a/b", "a/b/c"}},
		{"target inside another", []string{"a/b", "a"}, true, []string{"a", "a/b"}},
		{"repeated separator", []string{"a//b"}, true, []string{"a", "a/", "a//b"}},
		{"relative and absolute differ", []string{"zz/b", "/zz/c"}, true, []string{"zz", "/zz", "zz/b", "/zz/c"}},
		{"targets only", []string{"a/b", "c"}, false, []string{"a/b", "c"}},
		{"ancestor target first", []string{"a/b/c", "x", "a"}, false, []string{"x", "a", "a/b/c"}},
		{"duplicates dropped", []string{"d", "d"}, false, []string{"d"}},
		{"trailing separator kept as given", []string{"a/b/"}, false, []string{"a/b/"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			steps, err := mkdirp.Plan(tc.targets, tc.parents)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, steps)
		})
	}

	t.Run("invalid target", func(t *testing.T) {
		_, err := mkdirp.Plan([]string{"ok", ""}, true)
		assert.True(t, errors.Is(err, core.ErrEmptyPath))
	})
}

func TestValidatePath(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		err := mkdirp.ValidatePath("")
		assert.True(t, errors.Is(err, core.ErrEmptyPath))
	})

	t.Run("just under the limit", func(t *testing.T) {
		path := strings.Repeat("a", mkdirp.MaxPathLength-1)
		assert.NoError(t, mkdirp.ValidatePath(path))
	})

	t.Run("at the limit", func(t *testing.T) {
		path := strings.Repeat("a", mkdirp.MaxPathLength)
		err := mkdirp.ValidatePath(path)
		assert.True(t, errors.Is(err, core.ErrPathTooLong))

		_, err = mkdirp.Prefixes(path)
		assert.True(t, errors.Is(err, core.ErrPathTooLong))
	})
}
