// Package tree turns the walker's flat entry stream back into a nested
// rendering
//
// The assembler filters the stream and groups the survivors by parent
// directory into an Index; the renderer walks the Index depth-first from
// the root. No explicit node tree is built: the directory-path-keyed
// mapping is the single source of structure.
package tree

import (
	"path/filepath"
	"sort"

	"github.com/bethropolis/treee/internal/filter"
	"github.com/bethropolis/treee/internal/walker"
)

// Index maps a directory path to the ordered list of its surviving
// immediate children. Built once per invocation, read-only afterwards.
type Index struct {
	root     string
	children map[string][]walker.Entry
}

type buildConfig struct {
	filter    *filter.Filter
	dirsOnly  bool
	filesOnly bool
}

// BuildOption is a functional option for Build
type BuildOption func(*buildConfig)

// WithFilter applies a path filter to every entry
func WithFilter(f *filter.Filter) BuildOption {
	return func(cfg *buildConfig) {
		cfg.filter = f
	}
}

// WithDirsOnly drops file entries
func WithDirsOnly(enabled bool) BuildOption {
	return func(cfg *buildConfig) {
		cfg.dirsOnly = enabled
	}
}

// WithFilesOnly drops directory entries
func WithFilesOnly(enabled bool) BuildOption {
	return func(cfg *buildConfig) {
		cfg.filesOnly = enabled
	}
}

// Build assembles the Index for the entries discovered under root.
// Entries are filtered, sorted by full path in byte order and grouped by
// their parent directory. The root never appears as a child of itself.
func Build(root string, entries []walker.Entry, opts ...BuildOption) *Index {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rootKey := filepath.Clean(root)

	kept := make([]walker.Entry, 0, len(entries))
	for _, entry := range entries {
		if filepath.Clean(entry.Path) == rootKey {
			continue
		}
		if cfg.filter != nil && !cfg.filter.ShouldInclude(entry.Path, entry.IsDir) {
			continue
		}
		if cfg.dirsOnly && !entry.IsDir {
			continue
		}
		if cfg.filesOnly && entry.IsDir {
			continue
		}
		kept = append(kept, entry)
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Path < kept[j].Path
	})

	children := make(map[string][]walker.Entry)
	for _, entry := range kept {
		parent := filepath.Dir(entry.Path)
		children[parent] = append(children[parent], entry)
	}

	return &Index{
		root:     rootKey,
		children: children,
	}
}

// Root returns the cleaned root path the Index was built for
func (x *Index) Root() string {
	return x.root
}

// Children returns the sorted child entries of dir. The extra sort keeps
// the output deterministic regardless of how the entries were emitted.
func (x *Index) Children(dir string) []walker.Entry {
	entries := x.children[filepath.Clean(dir)]
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]walker.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})
	return sorted
}
