package document

// Document is the extracted text of a paged source, usually a PDF.
type Document struct {
	Name  string // Source filename
	Pages []Page // In page order
}

// Page is the text of a single page.
type Page struct {
	Number int    // 1-indexed
	Text   string // Empty when the page has no text layer
}

// Section is one numbered block of a snippets file.
type Section struct {
	Number int    // Value of the numeric-only marker line
	Body   string // Everything up to the next marker or end of text
}

// Texts returns the page texts in page order.
func (d *Document) Texts() []string {
	texts := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		texts = append(texts, p.Text)
	}
	return texts
}
