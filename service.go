package csv2pdf

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service orchestrates the CSV-to-PDF receipt pipeline.
type Service struct {
	cfg          serviceConfig
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			now:     time.Now,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Generate runs the full pipeline: validate rows, aggregate the receipt,
// render the template, convert to PDF. The context is used for cancellation
// and timeout.
//
// Row-level validation failures do not abort the run; they are collected in
// Result.RowErrors. The result carries any collected row errors even when an
// error is returned (notably ErrEmptyReceipt), so callers can always report
// what was skipped.
func (s *Service) Generate(ctx context.Context, input Input) (Result, error) {
	var result Result

	if err := s.validateInput(input); err != nil {
		return result, err
	}

	delimiter := input.Delimiter
	if delimiter == 0 {
		d, err := detectDelimiter(input.CSV)
		if err != nil {
			return result, err
		}
		delimiter = d
	}

	records, err := readRecords(input.CSV, delimiter)
	if err != nil {
		return result, err
	}

	receipt, rowErrors, err := buildReceipt(records, s.cfg.now())
	result.Receipt = receipt
	result.RowErrors = rowErrors
	if err != nil {
		return result, err
	}

	htmlContent, err := renderHTML(input.Template, receipt, input.DateFormat)
	if err != nil {
		return result, fmt.Errorf("rendering receipt: %w", err)
	}
	result.HTML = htmlContent

	if input.HTMLOnly {
		return result, nil
	}

	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return result, fmt.Errorf("converting to PDF: %w", err)
	}
	result.PDF = pdfBytes

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if strings.TrimSpace(input.CSV) == "" {
		return ErrEmptyInput
	}
	if strings.TrimSpace(input.Template) == "" {
		return ErrEmptyTemplate
	}
	if input.Delimiter != 0 && input.Delimiter != ',' && input.Delimiter != ';' {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, input.Delimiter)
	}
	return input.Page.Validate()
}
