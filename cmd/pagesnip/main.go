// Command pagesnip extracts page text from PDFs and splits snippet files
// into numbered sections.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/pagesnip/internal/config"
	"github.com/dgallion1/pagesnip/internal/parser"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries what subcommands share once the root command has run.
type app struct {
	cfg   config.Config
	log   *slog.Logger
	quiet bool
}

// pdfExtractor returns an extractor wired to the logger unless progress
// reporting is off.
func (a *app) pdfExtractor() *parser.PDFExtractor {
	e := &parser.PDFExtractor{}
	if a.cfg.ReportProgress && !a.quiet {
		e.Progress = parser.LogProgress(a.log)
	}
	return e
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pagesnip",
		Short: "Extract PDF page text and numbered text sections",
		Long: `pagesnip has two independent tools. "pages" prints the text layer of every
page of a PDF. "sections" splits a document at lines made only of digits and
prints each numbered section.

Logging is configured with PAGESNIP_LOG_LEVEL, PAGESNIP_LOG_FORMAT and
PAGESNIP_PROGRESS. Logs go to stderr; results go to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.Load()
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			a.log = newLogger(a.cfg, cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "do not report PDF page counts")

	root.AddCommand(newPagesCmd(a), newSectionsCmd(a), newVersionCmd())
	return root
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// execute runs root and reports a failure once, through a logger built from
// the environment. An invalid format or level falls back to JSON at info.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		log := newLogger(config.Load(), root.ErrOrStderr())
		log.Error("pagesnip failed", "error", err)
	}
	return err
}

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
