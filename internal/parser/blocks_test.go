package parser

import (
	"errors"
	"testing"
)

func TestExtractBlocks(t *testing.T) {
	doc := "# Demo\n" +
		"\n" +
		"```go\n" +
		"package main\n" +
		"```\n" +
		"\n" +
		"Some prose.\n" +
		"\n" +
		"```\n" +
		"plain text\n" +
		"```\n" +
		"\n" +
		"```js\n" +
		"```\n"

	blocks, err := ExtractBlocks([]byte(doc))
	if err != nil {
		t.Fatalf("ExtractBlocks failed: %v", err)
	}

	if len(blocks) != 3 {
		t.Fatalf("Expected 3 blocks, got %d", len(blocks))
	}

	if blocks[0].Lang != "go" {
		t.Errorf("Expected lang 'go', got '%s'", blocks[0].Lang)
	}
	if blocks[0].Content != "package main\n" {
		t.Errorf("Unexpected content for block 0: %q", blocks[0].Content)
	}

	if blocks[1].Lang != "" {
		t.Errorf("Expected empty lang for bare fence, got '%s'", blocks[1].Lang)
	}

	// Empty bodies still produce a block, keeping indices aligned.
	if blocks[2].Content != "" {
		t.Errorf("Expected empty content for block 2, got %q", blocks[2].Content)
	}

	for i, block := range blocks {
		if block.Index != i {
			t.Errorf("Block %d carries index %d", i, block.Index)
		}
	}
}

func TestExtractBlocksNoBlocks(t *testing.T) {
	blocks, err := ExtractBlocks([]byte("just prose, no fences\n"))
	if err != nil {
		t.Fatalf("ExtractBlocks failed: %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("Expected no blocks, got %d", len(blocks))
	}
}

func TestExtractBlocksUnterminated(t *testing.T) {
	doc := "intro\n" +
		"\n" +
		"```python\n" +
		"print('hi')\n"

	_, err := ExtractBlocks([]byte(doc))
	var unterminated *UnterminatedBlockError
	if !errors.As(err, &unterminated) {
		t.Fatalf("Expected UnterminatedBlockError, got %v", err)
	}
	if unterminated.Line != 3 {
		t.Errorf("Expected opening fence at line 3, got %d", unterminated.Line)
	}
}

func TestExtractBlocksInlineCodeSpanIsNotAFence(t *testing.T) {
	// An info string cannot contain a backtick, so a line-leading inline
	// code span must not be taken for an opening fence.
	doc := "```go build``` compiles the module.\n\nprose only.\n"

	blocks, err := ExtractBlocks([]byte(doc))
	if err != nil {
		t.Fatalf("ExtractBlocks failed: %v", err)
	}
	if len(blocks) != 0 {
		t.Fatalf("Expected no blocks, got %d", len(blocks))
	}
}

func TestExtractBlocksLongerFenceWrapsShorter(t *testing.T) {
	// A four-backtick fence may contain a bare ``` line; only a run at
	// least as long as the opener closes the block.
	doc := "````\n```\ninner\n```\n````\n"

	blocks, err := ExtractBlocks([]byte(doc))
	if err != nil {
		t.Fatalf("ExtractBlocks failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Content != "```\ninner\n```\n" {
		t.Errorf("Unexpected content: %q", blocks[0].Content)
	}
}

func TestExtractBlocksHint(t *testing.T) {
	doc := "Create `main.py`:\n" +
		"\n" +
		"```python\n" +
		"print('hi')\n" +
		"```\n" +
		"\n" +
		"```python\n" +
		"print('bye')\n" +
		"```\n"

	blocks, err := ExtractBlocks([]byte(doc))
	if err != nil {
		t.Fatalf("ExtractBlocks failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Hint != "Create `main.py`:" {
		t.Errorf("Unexpected hint for block 0: %q", blocks[0].Hint)
	}
	// The second block is preceded by another block, not a paragraph.
	if blocks[1].Hint != "" {
		t.Errorf("Expected empty hint for block 1, got %q", blocks[1].Hint)
	}
}

func TestExtractBlocksInfoAttributes(t *testing.T) {
	doc := "```go title=main\nfunc main() {}\n```\n"

	blocks, err := ExtractBlocks([]byte(doc))
	if err != nil {
		t.Fatalf("ExtractBlocks failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Lang != "go" {
		t.Errorf("Expected lang 'go', got '%s'", blocks[0].Lang)
	}
}
