package parser

import (
	"fmt"
	"strings"

	"github.com/dgallion1/pagesnip/internal/sections"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownLoader handles Markdown files using goldmark. Markup is dropped;
// each source line of a block becomes one output line, so "# 3" reads as "3".
type MarkdownLoader struct{}

func (l *MarkdownLoader) Load(path string) (string, error) {
	raw, err := sections.ReadText(path)
	if err != nil {
		return "", fmt.Errorf("load markdown: %w", err)
	}
	src := []byte(raw)

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var buf strings.Builder
	writeBlockLines(&buf, doc, src)
	return buf.String(), nil
}

// writeBlockLines walks the block tree and writes the lines of every leaf
// block in document order.
func writeBlockLines(buf *strings.Builder, n ast.Node, src []byte) {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.WriteString(strings.TrimRight(string(line.Value(src)), "\r\n"))
			buf.WriteByte('\n')
		}
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeBlockLines(buf, c, src)
	}
}
