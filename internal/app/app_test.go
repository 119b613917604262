package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/treee/internal/app"
	"github.com/bethropolis/treee/internal/config"
)

// writeTestFile creates a file with the given content, failing the test on error.
func writeTestFile(t *testing.T, filePath string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", filePath, err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", filePath, err)
	}
}

// sampleTree creates the root/a.txt + root/b/c.txt fixture.
func sampleTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.txt"), "a")
	writeTestFile(t, filepath.Join(root, "b", "c.txt"), "c")
	return root
}

// run executes the application against cfg with a captured output buffer.
func run(t *testing.T, cfg *config.Config) (string, error) {
	t.Helper()
	application := app.New(cfg)
	var buf bytes.Buffer
	application.Output = &buf
	err := application.Run()
	return buf.String(), err
}

func TestRunRendersTree(t *testing.T) {
	root := sampleTree(t)
	cfg := config.Default()
	cfg.Root = root

	got, err := run(t, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := filepath.Base(root) + "\n" +
		"├── a.txt\n" +
		"└── b\n" +
		"    └── c.txt\n"
	if got != want {
		t.Errorf("unexpected output:\ngot  %q\nwant %q", got, want)
	}
}

func TestRunFullPathMode(t *testing.T) {
	root := sampleTree(t)
	cfg := config.Default()
	cfg.Root = root
	cfg.FullPath = true

	got, err := run(t, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Root banner suppressed, every entry printed as its full path
	want := filepath.Join(root, "a.txt") + "\n" +
		filepath.Join(root, "b") + "\n" +
		filepath.Join(root, "b", "c.txt") + "\n"
	if got != want {
		t.Errorf("unexpected output:\ngot  %q\nwant %q", got, want)
	}
	if strings.Contains(got, "├──") || strings.Contains(got, "└──") {
		t.Error("full-path mode must not draw connectors")
	}
}

func TestRunExcludePattern(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "x.log"), "x")
	writeTestFile(t, filepath.Join(root, "y.txt"), "y")

	cfg := config.Default()
	cfg.Root = root
	cfg.ExcludePatterns = []string{"*.log"}

	got, err := run(t, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := filepath.Base(root) + "\n" +
		"└── y.txt\n"
	if got != want {
		t.Errorf("unexpected output:\ngot  %q\nwant %q", got, want)
	}
}

func TestRunDirectoriesOnly(t *testing.T) {
	root := sampleTree(t)
	cfg := config.Default()
	cfg.Root = root
	cfg.DirsOnly = true

	got, err := run(t, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := filepath.Base(root) + "\n" +
		"└── b\n"
	if got != want {
		t.Errorf("unexpected output:\ngot  %q\nwant %q", got, want)
	}
}

func TestRunKindConflictFailsBeforeOutput(t *testing.T) {
	root := sampleTree(t)
	cfg := config.Default()
	cfg.Root = root
	cfg.DirsOnly = true
	cfg.FilesOnly = true

	got, err := run(t, cfg)
	if err == nil {
		t.Fatal("expected an error for conflicting kind flags")
	}
	if got != "" {
		t.Errorf("no output may be produced on a fatal error, got %q", got)
	}
}

func TestRunNonexistentRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	cfg := config.Default()
	cfg.Root = missing

	got, err := run(t, cfg)
	if err == nil {
		t.Fatal("expected an error for a nonexistent root")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error must name the missing path, got %v", err)
	}
	if got != "" {
		t.Errorf("no output may be produced on a fatal error, got %q", got)
	}
}

func TestRunMalformedGlobFailsBeforeOutput(t *testing.T) {
	root := sampleTree(t)
	cfg := config.Default()
	cfg.Root = root
	cfg.IncludePatterns = []string{"["}

	got, err := run(t, cfg)
	if err == nil {
		t.Fatal("expected an error for a malformed glob pattern")
	}
	if got != "" {
		t.Errorf("no output may be produced on a fatal error, got %q", got)
	}
}

func TestRunRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, ".gitignore"), "build/\n")
	writeTestFile(t, filepath.Join(root, "build", "out.bin"), "o")
	writeTestFile(t, filepath.Join(root, "main.go"), "m")

	cfg := config.Default()
	cfg.Root = root

	got, err := run(t, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if strings.Contains(got, "build") {
		t.Errorf("gitignored directory must not be rendered, got %q", got)
	}
	if !strings.Contains(got, "main.go") {
		t.Errorf("expected main.go in output, got %q", got)
	}
}

func TestRunDepthLimit(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "d1", "d2", "deep.txt"), "d")

	cfg := config.Default()
	cfg.Root = root
	cfg.MaxDepth = 0

	got, err := run(t, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := filepath.Base(root) + "\n" +
		"└── d1\n"
	if got != want {
		t.Errorf("unexpected output:\ngot  %q\nwant %q", got, want)
	}
}
