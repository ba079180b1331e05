package csv2pdf

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Required CSV column names (matched case-insensitively).
const (
	columnProduct = "product"
	columnPrice   = "price"
	columnQty     = "qty"
)

// requiredColumns lists the columns every input file must declare.
var requiredColumns = []string{columnProduct, columnPrice, columnQty}

// record maps a normalized (lower-cased, trimmed) column name to the raw
// cell value for one data row.
type record map[string]string

// detectDelimiter picks ',' or ';' by inspecting the header line.
// The more frequent of the two wins; ties go to the comma. A header that
// contains neither cannot carry the three required columns, so this fails
// with ErrDelimiterDetect.
func detectDelimiter(content string) (rune, error) {
	header := content
	if idx := strings.IndexAny(content, "\r\n"); idx != -1 {
		header = content[:idx]
	}

	commas := strings.Count(header, ",")
	semicolons := strings.Count(header, ";")

	switch {
	case commas == 0 && semicolons == 0:
		return 0, ErrDelimiterDetect
	case semicolons > commas:
		return ';', nil
	default:
		return ',', nil
	}
}

// readRecords parses CSV content into one record per data row.
// The header row is required and must declare all required columns; extra
// columns are kept so templates lose nothing. Fully empty rows are skipped.
func readRecords(content string, delimiter rune) ([]record, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // rows with missing cells fail per-row, not globally
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("%w: %v", ErrCSVRead, err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}

	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	var records []record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCSVRead, err)
		}
		if isEmptyRow(row) {
			continue
		}

		rec := make(record, len(columns))
		for i, name := range columns {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// missingColumns returns the required columns absent from the header.
func missingColumns(columns []string) []string {
	present := make(map[string]bool, len(columns))
	for _, name := range columns {
		present[name] = true
	}

	var missing []string
	for _, name := range requiredColumns {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// isEmptyRow reports whether every cell in the row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow validates one record into a LineItem.
// Pure function: no side effects, all failures are typed sentinel errors.
func parseRow(rec record) (LineItem, error) {
	product, err := parseProduct(rec)
	if err != nil {
		return LineItem{}, err
	}

	price, err := parsePrice(rec)
	if err != nil {
		return LineItem{}, err
	}

	qty, err := parseQty(rec)
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{Product: product, Price: price, Qty: qty}, nil
}

// parseProduct extracts and validates the product name.
func parseProduct(rec record) (string, error) {
	raw, ok := rec[columnProduct]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingColumn, columnProduct)
	}
	product := strings.TrimSpace(raw)
	if product == "" {
		return "", ErrMissingProduct
	}
	return product, nil
}

// parsePrice extracts and validates the price as an exact decimal.
// The decimal separator must be '.'; a comma-decimal like "1,50" is rejected
// rather than silently reinterpreted.
func parsePrice(rec record) (decimal.Decimal, error) {
	raw, ok := rec[columnPrice]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMissingColumn, columnPrice)
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return decimal.Zero, fmt.Errorf("%w: value is empty", ErrInvalidPrice)
	}
	if strings.Contains(text, ",") {
		return decimal.Zero, fmt.Errorf("%w: %q (use '.' as decimal separator)", ErrInvalidPrice, text)
	}

	price, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, text)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q (must be non-negative)", ErrInvalidPrice, text)
	}

	return price.Round(moneyPlaces), nil
}

// parseQty extracts and validates the quantity as a non-negative integer.
func parseQty(rec record) (int, error) {
	raw, ok := rec[columnQty]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, columnQty)
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, fmt.Errorf("%w: value is empty", ErrInvalidQuantity)
	}

	qty, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (must be an integer)", ErrInvalidQuantity, text)
	}
	if qty < 0 {
		return 0, fmt.Errorf("%w: %q (must be non-negative)", ErrInvalidQuantity, text)
	}

	return qty, nil
}
