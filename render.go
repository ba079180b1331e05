package csv2pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// defaultDateFormat is the Go layout used for the displayed generation date
// when the caller does not specify one.
const defaultDateFormat = "2006-01-02 15:04:05"

// receiptView is the exact binding surface exposed to templates:
// ordered line items (product, price, qty, subtotal), total, timestamp.
// Money amounts are pre-formatted with two decimal places.
type receiptView struct {
	Items       []itemView
	Total       string
	GeneratedAt string
}

// itemView is one line item as seen by the template.
type itemView struct {
	Product  string
	Price    string
	Qty      int
	Subtotal string
}

// renderHTML binds the receipt into the template source and returns markup.
// A template that references fields outside the binding surface fails with
// ErrTemplateRender; malformed template syntax fails with ErrTemplateParse.
func renderHTML(source string, receipt Receipt, dateFormat string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", ErrEmptyTemplate
	}

	tpl, err := template.New("receipt").Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	if dateFormat == "" {
		dateFormat = defaultDateFormat
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, newReceiptView(receipt, dateFormat)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return buf.String(), nil
}

// newReceiptView converts a Receipt into its template binding surface.
func newReceiptView(receipt Receipt, dateFormat string) receiptView {
	items := make([]itemView, len(receipt.Items))
	for i, item := range receipt.Items {
		items[i] = itemView{
			Product:  item.Product,
			Price:    item.Price.StringFixed(moneyPlaces),
			Qty:      item.Qty,
			Subtotal: item.Subtotal().StringFixed(moneyPlaces),
		}
	}

	return receiptView{
		Items:       items,
		Total:       receipt.Total().StringFixed(moneyPlaces),
		GeneratedAt: receipt.GeneratedAt.Format(dateFormat),
	}
}
