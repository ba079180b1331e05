package csv2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Input and CSV structure errors.
	ErrEmptyInput      = errors.New("CSV content cannot be empty")
	ErrDelimiterDetect = errors.New("cannot detect CSV delimiter (expected ',' or ';')")
	ErrCSVRead         = errors.New("CSV read failed")

	// Per-row validation errors.
	ErrMissingColumn   = errors.New("missing required column")
	ErrMissingProduct  = errors.New("product cannot be empty")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidQuantity = errors.New("invalid quantity")

	// Receipt aggregation errors.
	ErrEmptyReceipt = errors.New("no valid rows in CSV")

	// Template errors.
	ErrEmptyTemplate  = errors.New("template source cannot be empty")
	ErrTemplateParse  = errors.New("template parse failed")
	ErrTemplateRender = errors.New("template rendering failed")

	// PDF rendering errors.
	ErrRenderFailure  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Export errors.
	ErrOutputDirUnwritable = errors.New("output directory is not writable")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Delimiter configuration errors.
	ErrInvalidDelimiter = errors.New("invalid delimiter (must be ',' or ';')")
)
