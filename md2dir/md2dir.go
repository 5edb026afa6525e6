package md2dir

import (
	"fmt"
	"runtime/debug"

	"github.com/littler00t/md2dir/cli"
	"github.com/littler00t/md2dir/internal/fs"
	"github.com/littler00t/md2dir/internal/parser"
	"github.com/littler00t/md2dir/internal/resolver"
	"github.com/littler00t/md2dir/internal/source"
	"github.com/littler00t/md2dir/model"
)

// App orchestrates the entire application logic.
type App struct {
	cfg            *cli.Config
	sourceProvider *source.Provider
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance.
func New(cfg *cli.Config) *App {
	return &App{
		cfg:            cfg,
		sourceProvider: source.New(),
	}
}

// Execute runs the pipeline selected by the parsed flags.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	content, err := a.sourceProvider.GetContent(a.cfg.Input)
	if err != nil {
		return model.Summary{}, err
	}
	if content == "" {
		return model.Summary{Message: "Source is empty. Nothing to process."}, nil
	}

	blocks, err := parser.ExtractBlocks([]byte(content))
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to extract code blocks: %w", err)
	}

	if !a.cfg.Map {
		return a.listBlocks(blocks), nil
	}
	return a.mapBlocks(blocks)
}

// listBlocks prints every surviving block with its extraction index.
func (a *App) listBlocks(blocks []model.CodeBlock) model.Summary {
	blocks = dropExcluded(blocks, a.cfg.ExcludeBlocks)
	for _, block := range blocks {
		fmt.Printf("[%d] %s:\n%s\n", block.Index, block.Lang, block.Content)
	}
	return model.Summary{Message: fmt.Sprintf("Found %d code block(s).", len(blocks))}
}

// mapBlocks resolves assignments and either previews or writes them.
func (a *App) mapBlocks(blocks []model.CodeBlock) (model.Summary, error) {
	assignments, err := resolver.Resolve(blocks, resolver.Options{
		UseComments:   a.cfg.Comments,
		ExcludePaths:  a.cfg.ExcludePaths,
		ExcludeBlocks: a.cfg.ExcludeBlocks,
	})
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to resolve file assignments: %w", err)
	}
	if len(assignments) == 0 {
		return model.Summary{Message: "No code blocks to process."}, nil
	}

	if !a.cfg.Write {
		for _, assignment := range assignments {
			fmt.Printf("--- %s (%s) ---\n%s\n", assignment.Path, assignment.Block.Lang, assignment.Block.Content)
		}
		return model.Summary{Message: fmt.Sprintf("Resolved %d assignment(s). Re-run with --write to create files.", len(assignments))}, nil
	}

	return fs.Apply(a.cfg.OutputDir, assignments)
}

func dropExcluded(blocks []model.CodeBlock, indices []int) []model.CodeBlock {
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
