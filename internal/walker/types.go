// Package walker handles the depth-limited, ignore-aware directory descent
package walker

// Entry is a single discovered filesystem node. Path is the root
// argument joined with the walker-relative path, so a relative root
// yields relative entry paths.
type Entry struct {
	Path  string
	IsDir bool
}

// WalkFunc is the callback invoked once per surviving entry
type WalkFunc func(entry Entry) error

// SkippedReason clarifies why an entry was not emitted.
type SkippedReason string

const (
	ReasonIgnoredRule      SkippedReason = "Ignored (Hidden/Gitignore Rule)"
	ReasonSkippedDepth     SkippedReason = "Skipped (Depth Limit)"
	ReasonSkippedPermError SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedPathError SkippedReason = "Skipped (Path Calculation Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects skipped items during a walk.
// The walk is single-threaded, so no locking is needed.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
