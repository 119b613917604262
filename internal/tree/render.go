package tree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/bethropolis/treee/internal/walker"
)

// Tree-drawing connectors
const (
	connectorMiddle   = "├── "
	connectorLast     = "└── "
	prefixContinuing  = "│   "
	prefixLastSibling = "    "
)

// Renderer prints an Index either as an indented tree with connectors
// or as a flat list of full paths.
type Renderer struct {
	output    io.Writer
	useColors bool
	fullPath  bool
	dirPaint  func(a ...interface{}) string
}

// NewRenderer creates a Renderer with default settings
func NewRenderer() *Renderer {
	return &Renderer{
		output:   os.Stdout,
		dirPaint: color.New(color.FgBlue, color.Bold).SprintFunc(),
	}
}

// WithOutput sets the output destination
func (r *Renderer) WithOutput(w io.Writer) *Renderer {
	r.output = w
	return r
}

// WithColors enables or disables colored directory names
func (r *Renderer) WithColors(enabled bool) *Renderer {
	r.useColors = enabled
	return r
}

// WithFullPath switches to flat full-path output
func (r *Renderer) WithFullPath(enabled bool) *Renderer {
	r.fullPath = enabled
	return r
}

// PrintRoot writes the banner line naming the root. Used in tree mode
// only; full-path mode suppresses it.
func (r *Renderer) PrintRoot(root string) error {
	name := filepath.Base(root)
	if r.useColors {
		name = r.dirPaint(name)
	}
	_, err := fmt.Fprintln(r.output, name)
	return err
}

// Render walks the Index depth-first from its root and prints every
// entry. Directories are recursed into after being printed, so they
// always appear before their descendants.
func (r *Renderer) Render(index *Index) error {
	return r.renderDir(index.Root(), index, "")
}

func (r *Renderer) renderDir(dir string, index *Index, prefix string) error {
	children := index.Children(dir)
	for i, child := range children {
		isLast := i == len(children)-1

		if err := r.printEntry(child, prefix, isLast); err != nil {
			return err
		}

		if child.IsDir {
			if err := r.renderDir(child.Path, index, r.childPrefix(prefix, isLast)); err != nil {
				return err
			}
		}
	}
	return nil
}

// printEntry writes a single entry line. Directory names are colored
// when colors are enabled; file names never are.
func (r *Renderer) printEntry(entry walker.Entry, prefix string, isLast bool) error {
	if r.fullPath {
		line := entry.Path
		if r.useColors && entry.IsDir {
			line = r.dirPaint(line)
		}
		_, err := fmt.Fprintln(r.output, line)
		return err
	}

	connector := connectorMiddle
	if isLast {
		connector = connectorLast
	}

	name := filepath.Base(entry.Path)
	if r.useColors && entry.IsDir {
		name = r.dirPaint(name)
	}

	_, err := fmt.Fprintf(r.output, "%s%s%s\n", prefix, connector, name)
	return err
}

// childPrefix derives the indentation for the children of a just-printed
// directory. Descendants of a last sibling get blank padding instead of
// a continuing vertical bar.
func (r *Renderer) childPrefix(prefix string, isLast bool) string {
	if r.fullPath {
		return ""
	}
	if isLast {
		return prefix + prefixLastSibling
	}
	return prefix + prefixContinuing
}
