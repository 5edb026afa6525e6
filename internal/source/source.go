package source

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Provider determines and retrieves the markdown source content.
type Provider struct{}

// New creates a new Provider.
func New() *Provider {
	return &Provider{}
}

// GetContent retrieves the document text. A named input reads that file,
// "-" reads stdin, and with no input argument piped stdin is used when
// present, the clipboard otherwise.
func (p *Provider) GetContent(input string) (string, error) {
	switch {
	case input == "-":
		return readStdin()
	case input != "":
		content, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("failed to read input file '%s': %w", input, err)
		}
		return string(content), nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		return readStdin()
	}

	content, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read from clipboard: %w", err)
	}
	return content, nil
}

func readStdin() (string, error) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(content), nil
}
