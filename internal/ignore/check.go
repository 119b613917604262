package ignore

import (
	"path/filepath"
	"strings"
)

// ShouldIgnore checks if a file or directory should be skipped.
// relativePath is relative to the matcher's root and isDir classifies
// the entry.
func (m *Matcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m == nil {
		return false
	}

	// Never ignore the root itself
	if relativePath == "" || relativePath == "." {
		return false
	}

	if m.ignoreHidden && isHidden(relativePath) {
		m.logger.Debug("ignore: skipping %q (hidden rule)", relativePath)
		return true
	}

	if !m.rulesEnabled {
		return false
	}

	if isPathInGitDir(relativePath, isDir) {
		m.logger.Debug("ignore: skipping %q (.git rule)", relativePath)
		return true
	}

	// Delegate to the gitignore library. Relative avoids the stat the
	// library would otherwise perform, so rules also resolve for paths
	// that no longer exist.
	if m.repoIgnore != nil {
		unixPath := filepath.ToSlash(relativePath)

		ignored := false
		// The library has been observed to panic on unusual inputs;
		// treat a panic as "no match".
		func() {
			defer func() {
				if r := recover(); r != nil {
					m.logger.Error("ignore: recovered panic in gitignore library for path %q: %v", relativePath, r)
					ignored = false
				}
			}()
			if match := m.repoIgnore.Relative(unixPath, isDir); match != nil {
				ignored = match.Ignore()
			}
		}()

		if ignored {
			m.logger.Debug("ignore: skipping %q (repository rule)", relativePath)
			return true
		}
	}

	return false
}

// isHidden reports whether the path's base name, or any parent
// directory component, starts with a dot.
func isHidden(relativePath string) bool {
	base := filepath.Base(relativePath)
	if strings.HasPrefix(base, ".") {
		return true
	}

	dir := filepath.Dir(relativePath)
	for dir != "." && dir != "/" && dir != "\\" {
		base = filepath.Base(dir)
		if strings.HasPrefix(base, ".") {
			return true
		}
		dir = filepath.Dir(dir)
	}
	return false
}

// isPathInGitDir checks if a path is inside a .git directory
func isPathInGitDir(relativePath string, isDir bool) bool {
	parts := strings.Split(filepath.ToSlash(relativePath), "/")
	for i, part := range parts {
		if part == ".git" {
			// If .git is a directory component (not just a prefix of a filename)
			if isDir || i < len(parts)-1 {
				return true
			}
		}
	}
	return false
}
