// Package filter provides glob-based path inclusion checks
//
// A Filter holds three compiled pattern sets: exclude patterns, include
// patterns and bare file-name patterns. Exclude patterns always win and
// apply to every entry kind; include and file-name patterns constrain
// files only, so directories stay reachable for traversal even when no
// include pattern matches them.
package filter

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Filter evaluates a path against the compiled pattern sets.
// Immutable once built; safe to reuse across a whole run.
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
	names   []glob.Glob
}

// New compiles the given pattern lists into a Filter.
// It fails on the first pattern that is not a valid glob.
func New(includePatterns, excludePatterns, filePatterns []string) (*Filter, error) {
	include, err := compileAll("include", includePatterns)
	if err != nil {
		return nil, err
	}
	exclude, err := compileAll("exclude", excludePatterns)
	if err != nil {
		return nil, err
	}
	names, err := compileAll("file", filePatterns)
	if err != nil {
		return nil, err
	}

	return &Filter{
		include: include,
		exclude: exclude,
		names:   names,
	}, nil
}

// compileAll compiles a pattern list, keeping the input order.
// Patterns are compiled with '/' as a separator so that '*' and '?'
// never match across path components, matching shell glob semantics.
func compileAll(kind string, patterns []string) ([]glob.Glob, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("filter: invalid %s pattern %q: %w", kind, pattern, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

// ShouldInclude reports whether the entry at path survives the filter.
// Pure and deterministic for a fixed Filter. Checks run in strict order:
// exclude first (full path or base name), then the directory pass-through,
// then the include set, then the file-name set. The include and file-name
// checks are independent; when both sets are non-empty a file must
// satisfy both.
func (f *Filter) ShouldInclude(path string, isDir bool) bool {
	fullPath := filepath.ToSlash(path)
	baseName := filepath.Base(path)

	for _, pattern := range f.exclude {
		if pattern.Match(fullPath) || pattern.Match(baseName) {
			return false
		}
	}

	// Directories are only ever blocked by exclude patterns, so the
	// traversal can still reach matching files in subdirectories.
	if isDir {
		return true
	}

	if len(f.include) > 0 {
		included := false
		for _, pattern := range f.include {
			if pattern.Match(fullPath) || pattern.Match(baseName) {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}

	if len(f.names) > 0 {
		for _, pattern := range f.names {
			if pattern.Match(baseName) {
				return true
			}
		}
		return false
	}

	return true
}
