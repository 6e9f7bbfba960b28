package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pages <file.pdf>",
		Short: "Print the text of every page of a PDF",
		Long: `Pages loads the PDF into memory and prints each page's text layer in page
order, each preceded by a "--- page N ---" line. Pages without a text layer
(scanned images) print as empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.pdfExtractor().Extract(args[0])
			if err != nil {
				return fmt.Errorf("pages %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			for _, p := range doc.Pages {
				fmt.Fprintf(out, "--- page %d ---\n", p.Number)
				fmt.Fprint(out, p.Text)
				if !strings.HasSuffix(p.Text, "\n") {
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}
}
