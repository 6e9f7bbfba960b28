package parser

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/pagesnip/internal/document"
	"github.com/dgallion1/pagesnip/internal/sections"
	pdflib "github.com/ledongthuc/pdf"
)

// ProgressFunc is told how many pages a PDF has before extraction starts.
type ProgressFunc func(name string, pages int)

// LogProgress reports page counts through log.
func LogProgress(log *slog.Logger) ProgressFunc {
	return func(name string, pages int) {
		log.Info("extracting pdf", "file", name, "pages", pages)
	}
}

// PDFExtractor extracts the text layer of every page of a PDF.
// The zero value is ready to use and reports no progress.
type PDFExtractor struct {
	Progress ProgressFunc
}

// ExtractPageTexts returns one string per page of the PDF at path, in page order.
func ExtractPageTexts(path string) ([]string, error) {
	var e PDFExtractor
	return e.ExtractPageTexts(path)
}

// ExtractPageTexts returns one string per page of the PDF at path, in page order.
func (e *PDFExtractor) ExtractPageTexts(path string) ([]string, error) {
	doc, err := e.Extract(path)
	if err != nil {
		return nil, err
	}
	return doc.Texts(), nil
}

// Extract reads the whole file into memory and extracts every page.
func (e *PDFExtractor) Extract(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return e.ExtractBytes(data, filepath.Base(path))
}

// ExtractBytes extracts every page of an in-memory PDF. Any page failure
// aborts the whole document.
func (e *PDFExtractor) ExtractBytes(data []byte, name string) (doc *document.Document, err error) {
	// ledongthuc/pdf panics on some malformed object graphs.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("extract pdf %s: %w", name, rerr)
			} else {
				err = fmt.Errorf("extract pdf %s: %v", name, r)
			}
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", name, err)
	}

	numPages := reader.NumPage()
	if numPages < 0 {
		return nil, fmt.Errorf("open pdf %s: invalid page count %d", name, numPages)
	}
	if e.Progress != nil {
		e.Progress(name, numPages)
	}

	doc = &document.Document{
		Name:  name,
		Pages: make([]document.Page, 0, numPages),
	}
	for i := 1; i <= numPages; i++ {
		text, err := pageText(reader.Page(i))
		if err != nil {
			return nil, fmt.Errorf("extract pdf %s page %d: %w", name, i, err)
		}
		doc.Pages = append(doc.Pages, document.Page{Number: i, Text: text})
	}
	return doc, nil
}

// pageText returns "" for pages the page tree cannot resolve.
func pageText(page pdflib.Page) (string, error) {
	if page.V.IsNull() {
		return "", nil
	}
	return plainText(page)
}

// plainText is replaced in tests.
var plainText = func(page pdflib.Page) (string, error) {
	return page.GetPlainText(nil)
}

// PDFLoader flattens a PDF into text, one page after another.
type PDFLoader struct {
	Extractor *PDFExtractor // nil extracts silently
}

func (l *PDFLoader) Load(path string) (string, error) {
	e := l.Extractor
	if e == nil {
		e = &PDFExtractor{}
	}
	pages, err := e.ExtractPageTexts(path)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, page := range pages {
		page = sections.NormalizeNewlines(page)
		buf.WriteString(page)
		if page != "" && !strings.HasSuffix(page, "\n") {
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}
