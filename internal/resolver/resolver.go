// Package resolver pairs extracted code blocks with destination file
// paths. It is a pure transformation: no I/O, and the same inputs always
// produce the same assignments.
package resolver

import (
	"fmt"

	"github.com/littler00t/md2dir/internal/parser"
	"github.com/littler00t/md2dir/model"
)

// Options controls how blocks are paired with file paths.
type Options struct {
	// UseComments derives filenames from first-line comments (falling back
	// to the preceding-paragraph hint) instead of a structure block.
	UseComments bool
	// ExcludePaths removes exact-match entries from the filename source
	// before validation. No normalization, case-sensitive.
	ExcludePaths []string
	// ExcludeBlocks removes blocks by original extraction index.
	ExcludeBlocks []int
}

// CountMismatchError reports that the filename source and the pairable
// blocks disagree in length. Fatal: no partial assignment is produced.
type CountMismatchError struct {
	Paths  int
	Blocks int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("cannot assign %d file path(s) to %d code block(s)", e.Paths, e.Blocks)
}

// Resolve produces the ordered pairing of file paths to code blocks.
//
// Index exclusions apply first, so a removed block neither pairs nor
// shifts another block's default name. In structure mode the located
// structure block occupies an index but contributes no pairable content;
// when no structure block exists the filename source is empty and the
// count check reports the mismatch. Filename-source entries and blocks
// are then zipped positionally.
func Resolve(blocks []model.CodeBlock, opts Options) ([]model.Assignment, error) {
	remaining := excludeByIndex(blocks, opts.ExcludeBlocks)

	var names []string
	if opts.UseComments {
		for _, block := range remaining {
			name, ok := parser.CommentFilename(block.Content)
			if !ok {
				name, ok = parser.HintFilename(block.Hint)
			}
			if !ok {
				name = fmt.Sprintf("anonymous-%d", block.Index)
			}
			names = append(names, name)
		}
	} else {
		paths, structureIdx, ok := parser.LocateStructureBlock(remaining)
		if ok {
			names = paths
			remaining = excludeByIndex(remaining, []int{structureIdx})
		}
	}

	names = excludePaths(names, opts.ExcludePaths)

	if len(names) != len(remaining) {
		return nil, &CountMismatchError{Paths: len(names), Blocks: len(remaining)}
	}

	assignments := make([]model.Assignment, len(remaining))
	for i, block := range remaining {
		assignments[i] = model.Assignment{Path: names[i], Block: block}
	}
	return assignments, nil
}

func excludeByIndex(blocks []model.CodeBlock, indices []int) []model.CodeBlock {
	if len(indices) == 0 {
		return blocks
	}
	excluded := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		excluded[idx] = struct{}{}
	}

	kept := make([]model.CodeBlock, 0, len(blocks))
	for _, block := range blocks {
		if _, drop := excluded[block.Index]; !drop {
			kept = append(kept, block)
		}
	}
	return kept
}

func excludePaths(names, excludes []string) []string {
	if len(excludes) == 0 {
		return names
	}
	excluded := make(map[string]struct{}, len(excludes))
	for _, path := range excludes {
		excluded[path] = struct{}{}
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		if _, drop := excluded[name]; !drop {
			kept = append(kept, name)
		}
	}
	return kept
}
