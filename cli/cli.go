package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	Input         string
	Map           bool
	Comments      bool
	Write         bool
	OutputDir     string
	ExcludePaths  []string
	ExcludeBlocks []int
	Plain         bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.BoolVarP(&cfg.Map, "map", "m", false, "Assign a destination file path to each code block.")
	pflag.BoolVarP(&cfg.Comments, "comments", "c", false, "Take filenames from the first-line comment of each block instead of the structure block.")
	pflag.BoolVarP(&cfg.Write, "write", "w", false, "Write the mapped code blocks to files.")
	pflag.StringVarP(&cfg.OutputDir, "output-dir", "o", "output", "Directory to write the files to.")
	pflag.StringArrayVar(&cfg.ExcludePaths, "exclude", []string{}, "Exclude file paths that exactly match (repeatable).")
	pflag.IntSliceVar(&cfg.ExcludeBlocks, "exclude-block", []int{}, "Exclude code blocks by extraction index (comma-separated).")
	pflag.BoolVar(&cfg.Plain, "plain", false, "Disable the interactive progress display.")

	pflag.Usage = func() {
		fmt.Println("Usage: md2dir [flags] [input]")
		fmt.Println("\nExtract fenced code blocks from a markdown document and materialize them as files.")
		fmt.Println("Input is a file path, '-' for stdin; with no input, piped stdin or the clipboard is used.")
		fmt.Println("\nExample: cat README.md | md2dir -m -w -o ./project")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()
	cfg.Input = pflag.Arg(0)

	// Validate flag combinations
	if cfg.Comments && !cfg.Map {
		return nil, fmt.Errorf("error: --comments requires --map")
	}
	if cfg.Write && !cfg.Map {
		return nil, fmt.Errorf("error: --write requires --map")
	}
	for _, idx := range cfg.ExcludeBlocks {
		if idx < 0 {
			return nil, fmt.Errorf("error: --exclude-block indices must be non-negative, got %d", idx)
		}
	}

	return cfg, nil
}
