package sections

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/pagesnip/internal/document"
)

// ErrInvalidEncoding is returned for files that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid utf-8")

// TextSnippets reads a snippets file and parses it into sections.
func TextSnippets(path string) ([]document.Section, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// ReadText reads a UTF-8 text file with line endings normalized to "\n".
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read text %s: %w", path, ErrInvalidEncoding)
	}
	return NormalizeNewlines(string(data)), nil
}

// NormalizeNewlines converts "\r\n" and lone "\r" to "\n".
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
