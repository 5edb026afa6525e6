package model

// CodeBlock is one fenced code block extracted from a markdown document.
// Index is the zero-based extraction order. It is carried through every
// filtering stage so that default names and index exclusions always refer
// to the position in the original document.
type CodeBlock struct {
	Index   int
	Lang    string
	Content string
	// Hint is the raw text of the paragraph immediately preceding the
	// block, when present. Comment-mode naming falls back to it.
	Hint string
}

// Assignment pairs one destination file path with one code block.
type Assignment struct {
	Path  string
	Block CodeBlock
}

// Summary holds the results of an operation for display.
type Summary struct {
	Created  []string
	Modified []string
	Failed   []string
	Message  string
}
