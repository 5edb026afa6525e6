package md2dir_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/littler00t/md2dir/internal/resolver"
	"github.com/littler00t/md2dir/md2dir"
)

const structureDoc = "# Project\n" +
	"\n" +
	"```\n" +
	"├── src\n" +
	"│   └── main.py\n" +
	"└── README.md\n" +
	"```\n" +
	"\n" +
	"```python\n" +
	"print('main')\n" +
	"```\n" +
	"\n" +
	"```markdown\n" +
	"# Readme\n" +
	"```\n"

func TestMapStructureMode(t *testing.T) {
	assignments, err := md2dir.Map(structureDoc, md2dir.Config{})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	if len(assignments) != 2 {
		t.Fatalf("Expected 2 assignments, got %d", len(assignments))
	}
	if assignments[0].Path != "src/main.py" {
		t.Errorf("Expected 'src/main.py', got '%s'", assignments[0].Path)
	}
	if assignments[1].Path != "README.md" {
		t.Errorf("Expected 'README.md', got '%s'", assignments[1].Path)
	}
}

func TestMapCommentsMode(t *testing.T) {
	doc := "```go\n" +
		"// cmd/main.go\n" +
		"package main\n" +
		"```\n" +
		"\n" +
		"```python\n" +
		"print('hi')\n" +
		"```\n"

	assignments, err := md2dir.Map(doc, md2dir.Config{Comments: true})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	if len(assignments) != 2 {
		t.Fatalf("Expected 2 assignments, got %d", len(assignments))
	}
	if assignments[0].Path != "cmd/main.go" {
		t.Errorf("Expected 'cmd/main.go', got '%s'", assignments[0].Path)
	}
	if assignments[1].Path != "anonymous-1" {
		t.Errorf("Expected 'anonymous-1', got '%s'", assignments[1].Path)
	}
}

func TestMapCommentsModeHint(t *testing.T) {
	doc := "Save this as `app.py`:\n" +
		"\n" +
		"```python\n" +
		"print('hi')\n" +
		"```\n"

	assignments, err := md2dir.Map(doc, md2dir.Config{Comments: true})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	if len(assignments) != 1 {
		t.Fatalf("Expected 1 assignment, got %d", len(assignments))
	}
	if assignments[0].Path != "app.py" {
		t.Errorf("Expected 'app.py', got '%s'", assignments[0].Path)
	}
}

func TestExecuteRecoversPanic(t *testing.T) {
	// A nil config makes the pipeline panic; Execute must turn that into
	// a DetailedError carrying the stack instead of crashing.
	app := md2dir.New(nil)

	_, err := app.Execute()
	var detailed *md2dir.DetailedError
	if !errors.As(err, &detailed) {
		t.Fatalf("Expected DetailedError, got %v", err)
	}
	if len(detailed.Stack) == 0 {
		t.Error("Expected a captured stack trace")
	}
}

func TestMapCountMismatch(t *testing.T) {
	doc := "```\n" +
		"├── a.py\n" +
		"└── b.py\n" +
		"```\n" +
		"\n" +
		"```python\n" +
		"print('only one block')\n" +
		"```\n"

	_, err := md2dir.Map(doc, md2dir.Config{})
	var mismatch *resolver.CountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected CountMismatchError, got %v", err)
	}
	if mismatch.Paths != 2 || mismatch.Blocks != 1 {
		t.Errorf("Expected counts (2, 1), got (%d, %d)", mismatch.Paths, mismatch.Blocks)
	}
}

func TestExtract(t *testing.T) {
	blocks, err := md2dir.Extract(structureDoc)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("Expected 3 blocks, got %d", len(blocks))
	}
	if blocks[1].Lang != "python" {
		t.Errorf("Expected lang 'python', got '%s'", blocks[1].Lang)
	}
}

func TestMapAndWrite(t *testing.T) {
	root := t.TempDir()

	assignments, err := md2dir.Map(structureDoc, md2dir.Config{})
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	summary, err := md2dir.Write(root, assignments)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if len(summary.Created) != 2 {
		t.Fatalf("Expected 2 created files, got %d", len(summary.Created))
	}

	content, err := os.ReadFile(filepath.Join(root, "src", "main.py"))
	if err != nil {
		t.Fatalf("Expected src/main.py to exist: %v", err)
	}
	if string(content) != "print('main')\n" {
		t.Errorf("Unexpected content: %q", string(content))
	}
}
