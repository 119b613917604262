// Package ignore decides which filesystem entries the walker must skip
//
// The matcher combines three rule sources: the hidden-entry rule
// (dot-prefixed names and everything beneath them), the .git directory
// rule, and the hierarchical ignore files of the repository enclosing
// the root (.gitignore files, .git/info/exclude and the global ignore
// file, as loaded by the go-gitignore library).
package ignore

import (
	"fmt"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/bethropolis/treee/internal/utils"
)

// Matcher determines whether a file or directory should be skipped
// during traversal.
type Matcher struct {
	// The core gitignore object handling repository rules
	repoIgnore gitignore.GitIgnore

	rootDir      string
	ignoreHidden bool
	rulesEnabled bool
	logger       utils.Logger
}

// New creates and initializes a Matcher rooted at rootDir
func New(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	matcher := &Matcher{
		rootDir:      absRootDir,
		ignoreHidden: true, // Default
		rulesEnabled: true, // Default
		logger:       &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if err := matcher.init(); err != nil {
		return nil, err
	}

	return matcher, nil
}

// init loads the repository ignore rules
func (m *Matcher) init() error {
	m.logger.Debug("ignore: initializing for root %s (hidden=%v, rules=%v)",
		m.rootDir, m.ignoreHidden, m.rulesEnabled)

	if !m.rulesEnabled {
		m.logger.Debug("ignore: rules disabled, skipping gitignore initialization")
		return nil
	}

	// Use the repository approach so nested .gitignore files are loaded
	// recursively, matching git's actual behavior.
	repoMatcher, repoErr := gitignore.NewRepository(m.rootDir)
	if repoErr != nil {
		if repoMatcher == nil {
			m.logger.Warn("ignore: no ignore files loaded for '%s': %v. Continuing without repository rules.",
				m.rootDir, repoErr)
			// Create an empty matcher so methods don't panic
			repoMatcher = gitignore.New(nil, "", nil)
		} else {
			return fmt.Errorf("ignore: failed to load repository ignores: %w", repoErr)
		}
	}
	m.repoIgnore = repoMatcher

	return nil
}
