// Package summary handles display of scan results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/treee/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Debug(format string, args ...interface{})
}

// DisplayResults reports how many entries were rendered and how long the
// run took. Emitted at debug level so normal runs stay quiet.
func DisplayResults(logger Logger, entryCount int, duration time.Duration) {
	logger.Debug("Rendered %d entries.", entryCount)
	logger.Debug("Walk complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(skippedItems []walker.SkippedItem, output io.Writer) {
	fmt.Fprintf(output, "--- Skipped Items (%d) ---\n", len(skippedItems))
	if len(skippedItems) == 0 {
		fmt.Fprintln(output, "No items were skipped.")
		return
	}

	// Sort for consistent output
	sort.Slice(skippedItems, func(i, j int) bool {
		return skippedItems[i].Path < skippedItems[j].Path
	})
	for _, item := range skippedItems {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n",
			typeStr,
			50, // Max width for path column
			item.Path,
			item.Reason,
		)
	}
}
