package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/littler00t/md2dir/model"
)

// UnterminatedBlockError reports a fence that was opened but never closed.
type UnterminatedBlockError struct {
	Line int // 1-based line of the opening fence
}

func (e *UnterminatedBlockError) Error() string {
	return fmt.Sprintf("code block starting at line %d is never closed", e.Line)
}

// ExtractBlocks uses a markdown AST to find all fenced code blocks in
// document order. Empty blocks are kept so that indices stay aligned with
// the structure or comment filename sources.
func ExtractBlocks(source []byte) ([]model.CodeBlock, error) {
	if err := checkFences(source); err != nil {
		return nil, err
	}

	var blocks []model.CodeBlock
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fencedCodeBlock, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		block := model.CodeBlock{Index: len(blocks)}
		if fencedCodeBlock.Info != nil {
			info := string(fencedCodeBlock.Info.Text(source))
			// The info string may carry attributes after the language tag.
			if fields := strings.Fields(info); len(fields) > 0 {
				block.Lang = fields[0]
			}
		}

		var content bytes.Buffer
		lines := fencedCodeBlock.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			content.Write(line.Value(source))
		}
		block.Content = content.String()

		// The raw text of a directly preceding paragraph often names the
		// file ("Create `main.py`:"). Keep it for comment-mode naming.
		if prev := fencedCodeBlock.PreviousSibling(); prev != nil {
			if p, ok := prev.(*ast.Paragraph); ok {
				var hint bytes.Buffer
				hintLines := p.Lines()
				for i := 0; i < hintLines.Len(); i++ {
					hintLine := hintLines.At(i)
					hint.Write(hintLine.Value(source))
				}
				block.Hint = strings.TrimSpace(hint.String())
			}
		}

		blocks = append(blocks, block)
		return ast.WalkSkipChildren, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return nil, err
	}

	return blocks, nil
}

// checkFences scans fence marker lines and rejects a document whose last
// fence is never closed. Goldmark silently closes such a block at EOF,
// which would misalign indices against the filename sources. The scan
// follows the fence rules goldmark applies: an info string may not
// contain a backtick (that is an inline code span, not a fence), and a
// closing fence is a bare backtick run at least as long as the opener.
func checkFences(source []byte) error {
	inBlock := false
	openLine := 0
	openLen := 0

	for i, line := range strings.Split(string(source), "\n") {
		trimmed := strings.TrimSpace(line)
		run := leadingBackticks(trimmed)
		if inBlock {
			if run >= openLen && run == len(trimmed) {
				inBlock = false
			}
			continue
		}
		if run < 3 {
			continue
		}
		if strings.Contains(trimmed[run:], "`") {
			continue
		}
		inBlock = true
		openLine = i + 1
		openLen = run
	}

	if inBlock {
		return &UnterminatedBlockError{Line: openLine}
	}
	return nil
}

func leadingBackticks(s string) int {
	n := 0
	for n < len(s) && s[n] == '`' {
		n++
	}
	return n
}
