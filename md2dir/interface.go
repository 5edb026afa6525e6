package md2dir

import (
	"github.com/littler00t/md2dir/internal/fs"
	"github.com/littler00t/md2dir/internal/parser"
	"github.com/littler00t/md2dir/internal/resolver"
	"github.com/littler00t/md2dir/model"
)

// Config for using md2dir as a library.
type Config struct {
	// Derive filenames from first-line comments instead of a structure block.
	Comments bool
	// Resolved paths to drop before validation (exact match).
	ExcludePaths []string
	// Blocks to drop by extraction index.
	ExcludeBlocks []int
}

// Extract returns the ordered fenced code blocks of a markdown document.
func Extract(content string) ([]model.CodeBlock, error) {
	return parser.ExtractBlocks([]byte(content))
}

// Map extracts code blocks and resolves a destination file path for each.
// It performs no I/O; pair it with Write to materialize the result.
func Map(content string, config Config) ([]model.Assignment, error) {
	blocks, err := parser.ExtractBlocks([]byte(content))
	if err != nil {
		return nil, err
	}
	return resolver.Resolve(blocks, resolver.Options{
		UseComments:   config.Comments,
		ExcludePaths:  config.ExcludePaths,
		ExcludeBlocks: config.ExcludeBlocks,
	})
}

// Write materializes assignments under outputRoot, creating parent
// directories as needed.
func Write(outputRoot string, assignments []model.Assignment) (model.Summary, error) {
	return fs.Apply(outputRoot, assignments)
}
