package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrNotTree marks a block whose content does not parse as a directory
// tree diagram. The locator treats it as "try the next candidate", not as
// a failure.
var ErrNotTree = errors.New("not a structure block")

// MalformedTreeError reports a tree line nesting more than one level
// deeper than its predecessor, which makes the diagram ambiguous.
type MalformedTreeError struct {
	Name  string
	Depth int
	Prev  int
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("tree entry %q skips from depth %d to %d", e.Name, e.Prev, e.Depth)
}

// treeEntry is one parsed line of a tree diagram. Whether it is a file or
// a directory is only known once all lines are read: an entry followed by
// a deeper one is a directory even without a trailing slash.
type treeEntry struct {
	depth int
	name  string
	isDir bool
}

// Branch markers, pseudo-graphic and plain ASCII. Checked with the
// trailing space first so the name offset is exact.
var treeMarkers = []string{
	"├── ", "└── ", "|-- ", "`-- ", "+-- ",
	"├──", "└──", "|--", "`--", "+--",
}

// ParseTree parses a tree diagram into the ordered list of relative file
// paths it describes, in document order. Directories contribute path
// prefixes only. Returns ErrNotTree when the content is not a tree
// diagram, or a MalformedTreeError for ragged indentation.
func ParseTree(content string) ([]string, error) {
	entries, err := parseEntries(content)
	if err != nil {
		return nil, err
	}

	// Second pass: a deeper successor makes the entry a directory.
	for i := range entries {
		if i+1 < len(entries) && entries[i+1].depth > entries[i].depth {
			entries[i].isDir = true
		}
	}

	var paths []string
	var stack []string
	for _, e := range entries {
		if e.depth < len(stack) {
			stack = stack[:e.depth]
		}
		if e.isDir {
			stack = append(stack, e.name)
			continue
		}
		paths = append(paths, strings.Join(append(append([]string{}, stack...), e.name), "/"))
	}
	return paths, nil
}

func parseEntries(content string) ([]treeEntry, error) {
	var entries []treeEntry
	first := true

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// A leading "." line names the root and contributes nothing.
		if first && (strings.TrimSpace(line) == "." || strings.TrimSpace(line) == "./") {
			first = false
			continue
		}
		first = false

		// Pure connector continuation lines carry no entry.
		if isConnectorOnly(line) {
			continue
		}

		depth, name, ok := parseTreeLine(line)
		if !ok {
			return nil, ErrNotTree
		}

		prev := -1
		if len(entries) > 0 {
			prev = entries[len(entries)-1].depth
		}
		if depth > prev+1 {
			return nil, &MalformedTreeError{Name: name, Depth: depth, Prev: prev}
		}

		entries = append(entries, treeEntry{
			depth: depth,
			name:  strings.TrimSuffix(name, "/"),
			isDir: strings.HasSuffix(name, "/"),
		})
	}

	if len(entries) == 0 {
		return nil, ErrNotTree
	}
	return entries, nil
}

// parseTreeLine splits one line into its nesting depth and entry name.
func parseTreeLine(line string) (int, string, bool) {
	idx := -1
	used := ""
	for _, m := range treeMarkers {
		if i := strings.Index(line, m); i != -1 && (idx == -1 || i < idx) {
			idx = i
			used = m
		}
	}
	if idx == -1 {
		return 0, "", false
	}

	prefix := line[:idx]
	if !isConnectorPrefix(prefix) {
		return 0, "", false
	}
	name := strings.TrimSpace(line[idx+len(used):])
	if name == "" {
		return 0, "", false
	}
	return countDepth(prefix), name, true
}

// countDepth maps a connector prefix to a nesting level: every glyph is
// one column wide, one indent unit is four columns.
func countDepth(prefix string) int {
	return utf8.RuneCountInString(prefix) / 4
}

func isConnectorPrefix(prefix string) bool {
	for _, r := range prefix {
		switch r {
		case '│', '|', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

func isConnectorOnly(line string) bool {
	seen := false
	for _, r := range strings.TrimSpace(line) {
		switch r {
		case '│', '|', ' ', '\t':
			seen = true
		default:
			return false
		}
	}
	return seen
}
