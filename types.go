package csv2pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// moneyPlaces is the number of decimal places for all money amounts.
const moneyPlaces = 2

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// LineItem is one validated purchase row. Immutable once built.
type LineItem struct {
	Product string
	Price   decimal.Decimal // non-negative, 2 decimal places
	Qty     int             // non-negative
}

// Subtotal returns Price x Qty rounded to 2 decimal places.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Qty))).Round(moneyPlaces)
}

// Receipt holds the validated line items for one run.
type Receipt struct {
	Items       []LineItem
	GeneratedAt time.Time
}

// Total returns the sum of all item subtotals.
func (r Receipt) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range r.Items {
		total = total.Add(item.Subtotal())
	}
	return total.Round(moneyPlaces)
}

// RowError reports a validation failure for one CSV data row.
type RowError struct {
	Row int // 1-based data row index (header excluded)
	Err error
}

// Error implements the error interface.
func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Unwrap exposes the underlying validation error to errors.Is.
func (e RowError) Unwrap() error {
	return e.Err
}

// Input contains generation parameters.
type Input struct {
	CSV        string        // CSV content with header row (required)
	Template   string        // HTML template source (required)
	Delimiter  rune          // ',' or ';'; 0 = auto-detect
	Page       *PageSettings // page settings (optional, nil = defaults)
	DateFormat string        // Go time layout for the displayed date (optional)
	HTMLOnly   bool          // skip PDF rendering, return HTML only
}

// Result contains the outcome of one generation run.
type Result struct {
	Receipt   Receipt
	RowErrors []RowError // per-row validation failures, in row order
	HTML      string     // rendered markup
	PDF       []byte     // nil when Input.HTMLOnly is set
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	now     func() time.Time
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("csv2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithClock overrides the time source used for the receipt timestamp.
// Intended for tests that need deterministic output.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("csv2pdf: WithClock time source must be non-nil")
	}
	return func(s *Service) {
		s.cfg.now = now
	}
}
