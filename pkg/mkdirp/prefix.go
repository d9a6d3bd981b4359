package mkdirp

import (
	"fmt"
	"sort"

	"github.com/gammazero/toposort"

	"github.com/arthur-debert/mkdirp/pkg/mkdirp/core"
)

const (
	// Separator splits a path into segments.
	Separator = '/'
	// MaxPathLength is the exclusive upper bound on accepted path length.
	MaxPathLength = 256
)

// ValidatePath rejects empty paths and paths of MaxPathLength bytes or more.
func ValidatePath(path string) error {
	if path == "" {
		return core.NewPathError(core.ErrEmptyPath, path, nil)
	}
	if len(path) >= MaxPathLength {
		return core.NewPathError(core.ErrPathTooLong, path,
			fmt.Errorf("length %d, limit %d", len(path), MaxPathLength-1))
	}
	return nil
}

// Prefixes returns every ancestor prefix of path followed by path itself,
// ordered root to leaf. A single trailing separator is dropped first. The
// scan starts at index 1, so the leading "/" of an absolute path never
// yields a prefix of its own.
//
//	Prefixes("/tmp/a/b/") == []string{"/tmp", "/tmp/a", "/tmp/a/b"}
func Prefixes(path string) ([]string, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	if len(path) > 1 && path[len(path)-1] == Separator {
		path = path[:len(path)-1]
	}

	var prefixes []string
	for i := 1; i < len(path); i++ {
		if path[i] == Separator {
			prefixes = append(prefixes, path[:i])
		}
	}
	return append(prefixes, path), nil
}

// Plan returns the paths to check-or-create for targets, each exactly once.
//
// With parents the steps are every prefix of every target; without, the
// targets themselves. A step always comes after the nearest step it is
// nested under, so ancestors are handled first even when they are listed
// after their descendants. Steps are grouped by depth and, within a depth,
// kept in the order they were first named. One invalid target fails the
// whole plan.
func Plan(targets []string, parents bool) ([]string, error) {
	var steps []string
	seen := make(map[string]bool)
	add := func(step string) {
		if !seen[step] {
			seen[step] = true
			steps = append(steps, step)
		}
	}
	for _, target := range targets {
		prefixes, err := Prefixes(target)
		if err != nil {
			return nil, err
		}
		if !parents {
			add(target)
			continue
		}
		for _, prefix := range prefixes {
			add(prefix)
		}
	}

	// Edge is [2]interface{} where element 0 comes before element 1,
	// so the enclosing step comes before the step nested in it. A nil
	// vertex keeps steps with no enclosing step in the graph.
	parentOf := make(map[string]string, len(steps))
	edges := make([]toposort.Edge, 0, len(steps))
	for _, step := range steps {
		var from interface{}
		if parent, ok := enclosingStep(step, seen); ok {
			parentOf[step] = parent
			from = parent
		}
		edges = append(edges, toposort.Edge{from, step})
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, fmt.Errorf("ordering directories: %w", err)
	}

	depth := make(map[string]int, len(sorted))
	for _, node := range sorted {
		step, ok := node.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected type in topological sort result: %T", node)
		}
		if parent, ok := parentOf[step]; ok {
			depth[step] = depth[parent] + 1
		}
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return depth[steps[i]] < depth[steps[j]]
	})
	return steps, nil
}

// enclosingStep returns the longest prefix of step that is itself a step.
func enclosingStep(step string, steps map[string]bool) (string, bool) {
	prefixes, err := Prefixes(step)
	if err != nil {
		return "", false
	}
	for i := len(prefixes) - 1; i >= 0; i-- {
		if prefixes[i] != step && steps[prefixes[i]] {
			return prefixes[i], true
		}
	}
	return "", false
}
