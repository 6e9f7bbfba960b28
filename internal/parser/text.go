package parser

import "github.com/dgallion1/pagesnip/internal/sections"

// TextLoader handles plain text files.
type TextLoader struct{}

func (l *TextLoader) Load(path string) (string, error) {
	return sections.ReadText(path)
}
