package main

import (
	"errors"
	"os"

	csv2pdf "github.com/ai4bordon/csv2pdf-cli"
	"github.com/ai4bordon/csv2pdf-cli/internal/dateutil"
)

// Exit codes for the csv2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Receipt generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input data
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser/render errors (exit 4)
	if errors.Is(err, csv2pdf.ErrBrowserConnect) ||
		errors.Is(err, csv2pdf.ErrPageCreate) ||
		errors.Is(err, csv2pdf.ErrPageLoad) ||
		errors.Is(err, csv2pdf.ErrRenderFailure) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, csv2pdf.ErrOutputDirUnwritable) {
		return ExitIO
	}

	// Usage/config/data validation errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, csv2pdf.ErrEmptyInput) ||
		errors.Is(err, csv2pdf.ErrCSVRead) ||
		errors.Is(err, csv2pdf.ErrDelimiterDetect) ||
		errors.Is(err, csv2pdf.ErrInvalidDelimiter) ||
		errors.Is(err, csv2pdf.ErrMissingColumn) ||
		errors.Is(err, csv2pdf.ErrEmptyReceipt) ||
		errors.Is(err, csv2pdf.ErrEmptyTemplate) ||
		errors.Is(err, csv2pdf.ErrTemplateParse) ||
		errors.Is(err, csv2pdf.ErrTemplateRender) ||
		errors.Is(err, csv2pdf.ErrInvalidPageSize) ||
		errors.Is(err, csv2pdf.ErrInvalidOrientation) ||
		errors.Is(err, csv2pdf.ErrInvalidMargin) {
		return ExitUsage
	}

	return ExitGeneral
}
