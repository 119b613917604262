package ignore

import "github.com/bethropolis/treee/internal/utils"

// Option functions for configuration
type Option func(*Matcher)

// WithHidden controls whether dot-prefixed entries are skipped
func WithHidden(ignore bool) Option {
	return func(m *Matcher) {
		m.ignoreHidden = ignore
	}
}

// WithRules enables or disables the repository ignore rules
func WithRules(enabled bool) Option {
	return func(m *Matcher) {
		m.rulesEnabled = enabled
	}
}

// WithLogger sets a custom logger for the matcher
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
