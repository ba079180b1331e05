package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Default paths, overridable via flags or config file.
const (
	defaultInputPath    = "data/input.csv"
	defaultTemplatePath = "templates/template.html"
	defaultOutputDir    = "output"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	input       string
	template    string
	outputDir   string
	delimiter   string
	open        bool
	timeout     string
	dateFormat  string
	pageSize    string
	orientation string
	margin      float64
	htmlOnly    bool
	config      string
	quiet       bool
	verbose     bool
	version     bool

	fs *flag.FlagSet
}

// changed reports whether the named flag was explicitly set on the command
// line, which gives it precedence over config file values.
func (f *cliFlags) changed(name string) bool {
	return f.fs.Changed(name)
}

// parseFlags parses command-line flags.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("csv2pdf", flag.ContinueOnError)
	f := &cliFlags{fs: fs}

	fs.StringVarP(&f.input, "input", "i", defaultInputPath, "path to the purchases CSV")
	fs.StringVarP(&f.template, "template", "t", defaultTemplatePath, "path to the HTML receipt template")
	fs.StringVarP(&f.outputDir, "output-dir", "o", defaultOutputDir, "directory for generated PDFs")
	fs.StringVarP(&f.delimiter, "delimiter", "d", "", "CSV delimiter: ',' or ';' (default: auto-detect)")
	fs.BoolVar(&f.open, "open", false, "open the generated PDF with the system viewer")
	fs.StringVar(&f.timeout, "timeout", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.dateFormat, "date-format", "", "displayed date format (tokens: YYYY, MM, DD, HH, mm, ss)")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write the rendered HTML instead of a PDF")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}

// printUsage writes the full usage text to stderr.
func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage: csv2pdf [flags]

Generate a PDF receipt from a CSV of purchased items.

The CSV must be UTF-8 with a header row declaring product, price and qty
columns, delimited by ',' or ';'.

Flags:
%s`, fs.FlagUsages())
}
