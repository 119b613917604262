// Package walker handles the depth-limited, ignore-aware directory descent
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/treee/internal/ignore"
)

// Walk traverses the directory tree below rootDir and calls walkFn once
// per entry that survives the ignore rules and the depth limit. The root
// itself is never emitted. Entries the walker cannot read are dropped
// silently and recorded in the returned skipped-item list; only a
// cancelled context or an error from walkFn aborts the walk.
func Walk(rootDir string, matcher *ignore.Matcher, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}

	tracker := NewSkippedTracker(16)

	options.Logger.Debug("walker: starting walk. Root: %s, MaxDepth: %d", absRootDir, options.MaxDepth)

	walkErr := filepath.WalkDir(absRootDir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-options.Context.Done():
			return options.Context.Err()
		default:
		}

		isDir := d != nil && d.IsDir()

		relativePath, relErr := filepath.Rel(absRootDir, path)
		if relErr != nil {
			options.Logger.Debug("walker: path calculation failed for %q: %v", path, relErr)
			tracker.Track(path, ReasonSkippedPathError, isDir)
			return nil
		}

		// Unreadable entries are dropped, never fatal
		if err != nil {
			reason := ReasonSkippedWalkError
			if os.IsPermission(err) {
				reason = ReasonSkippedPermError
			}
			options.Logger.Debug("walker: dropping %q: %v", relativePath, err)
			tracker.Track(relativePath, reason, isDir)
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip the root entry itself
		if path == absRootDir || relativePath == "." {
			return nil
		}

		if matcher.ShouldIgnore(relativePath, isDir) {
			tracker.Track(relativePath, ReasonIgnoredRule, isDir)
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		depth := strings.Count(filepath.ToSlash(relativePath), "/")
		if options.MaxDepth >= 0 && depth > options.MaxDepth {
			tracker.Track(relativePath, ReasonSkippedDepth, isDir)
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if wErr := walkFn(Entry{Path: filepath.Join(rootDir, relativePath), IsDir: isDir}); wErr != nil {
			return wErr
		}

		// The children of a directory sitting at the limit would exceed
		// it, so don't descend.
		if isDir && options.MaxDepth >= 0 && depth >= options.MaxDepth {
			return filepath.SkipDir
		}
		return nil
	})

	return tracker.Items(), walkErr
}
