package parser

import (
	"regexp"
	"strings"
)

// Comment prefixes for common languages, longest match first.
var commentPrefixes = []string{"<!--", "//", "/*", "--", "#", ";", "%"}

var (
	// "Foo.ts or Bar.ts" style alternative listings keep the first option.
	alternativeRe = regexp.MustCompile(`(?i)\s+or\s+`)
	// A filename has no spaces and only path-ish characters.
	filenameRe = regexp.MustCompile(`^[A-Za-z0-9._/+\-]+$`)
)

// CommentFilename inspects the first non-blank line of a block for a
// single-line comment naming a file, e.g. "// main.go" or "# src/app.py".
// An absent or implausible name is a normal outcome, never an error.
func CommentFilename(content string) (string, bool) {
	line := firstNonBlankLine(content)
	if line == "" {
		return "", false
	}

	rest := ""
	matched := false
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(line, prefix) {
			rest = strings.TrimSpace(line[len(prefix):])
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	// Drop comment closers so "/* style.css */" yields "style.css".
	rest = strings.TrimSuffix(rest, "-->")
	rest = strings.TrimSuffix(rest, "*/")
	rest = strings.TrimSpace(rest)

	// Keep only the first of listed alternatives.
	if parts := alternativeRe.Split(rest, 2); len(parts) > 0 {
		rest = strings.TrimSpace(parts[0])
	}

	if !looksLikeFilename(rest) {
		return "", false
	}
	return rest, true
}

// A backticked name followed by a colon, e.g. "Create `main.py`:".
var hintFilenameRe = regexp.MustCompile("`([^`\n]+)`:")

// HintFilename scans the text preceding a block for a backticked
// filename announcing the block's destination. Only the last three lines
// are considered, nearest first. Like CommentFilename it never errors.
func HintFilename(hint string) (string, bool) {
	lines := strings.Split(hint, "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	for i := len(lines) - 1; i >= 0; i-- {
		match := hintFilenameRe.FindStringSubmatch(lines[i])
		if match == nil {
			continue
		}
		name := strings.TrimSpace(match[1])
		// Disallow spaces to avoid capturing commands like
		// `go run main.go` as a path.
		if name == "" || strings.Contains(name, " ") {
			continue
		}
		return name, true
	}
	return "", false
}

func looksLikeFilename(s string) bool {
	if s == "" || !filenameRe.MatchString(s) {
		return false
	}
	// A bare word like "TODO" is not a path; ask for a separator or an
	// extension dot.
	return strings.ContainsAny(s, "./")
}

func firstNonBlankLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
