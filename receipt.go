package csv2pdf

import "time"

// buildReceipt validates records into a Receipt, collecting per-row failures
// instead of aborting. A single bad row never blocks the whole receipt; the
// failures are returned to the caller for reporting and must not be dropped.
// When no row survives validation, the error is ErrEmptyReceipt and the
// collected row errors are still returned.
func buildReceipt(records []record, now time.Time) (Receipt, []RowError, error) {
	receipt := Receipt{GeneratedAt: now}

	var rowErrors []RowError
	for i, rec := range records {
		item, err := parseRow(rec)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: i + 1, Err: err})
			continue
		}
		receipt.Items = append(receipt.Items, item)
	}

	if len(receipt.Items) == 0 {
		return receipt, rowErrors, ErrEmptyReceipt
	}

	return receipt, rowErrors, nil
}
