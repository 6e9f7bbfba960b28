package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dgallion1/pagesnip/internal/document"
	"github.com/dgallion1/pagesnip/internal/sections"
)

// Loader flattens a document file into line-oriented plain text.
type Loader interface {
	Load(path string) (string, error)
}

// SupportedExtensions lists file extensions this package can load.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// Option configures the loaders returned by ForFile.
type Option func(*options)

type options struct {
	pdf *PDFExtractor
}

// WithPDFExtractor sets the extractor used for .pdf files.
func WithPDFExtractor(e *PDFExtractor) Option {
	return func(o *options) { o.pdf = e }
}

// ForFile returns the appropriate loader for a filename.
func ForFile(filename string, opts ...Option) (Loader, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextLoader{}, nil
	case ".md", ".markdown":
		return &MarkdownLoader{}, nil
	case ".html", ".htm":
		return &HTMLLoader{}, nil
	case ".pdf":
		return &PDFLoader{Extractor: o.pdf}, nil
	case ".docx":
		return &DOCXLoader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Sections loads path with the loader for its extension and splits the
// result into numbered sections.
func Sections(path string, opts ...Option) ([]document.Section, error) {
	l, err := ForFile(path, opts...)
	if err != nil {
		return nil, err
	}
	text, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	return sections.Parse(text)
}
