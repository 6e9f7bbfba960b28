package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/pagesnip/internal/parser"
)

func newSectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sections <file>",
		Short: "Split a document into numbered sections",
		Long: `Sections reads a text, Markdown, HTML, DOCX or PDF file and splits it at every
line that consists only of digits. Each section prints as its number on one
line followed by its body, so the output parses back to the same sections
when read as text. Text before the first number line is dropped.

Supported extensions: ` + supportedList(),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			secs, err := parser.Sections(path, parser.WithPDFExtractor(a.pdfExtractor()))
			if err != nil {
				return fmt.Errorf("sections %s: %w", path, err)
			}
			a.log.Debug("parsed sections", "file", path, "sections", len(secs))

			out := cmd.OutOrStdout()
			for _, s := range secs {
				fmt.Fprintf(out, "%d\n%s", s.Number, s.Body)
			}
			return nil
		},
	}
}

func supportedList() string {
	return strings.Join(slices.Sorted(maps.Keys(parser.SupportedExtensions)), ", ")
}
