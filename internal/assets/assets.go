// Package assets provides the embedded default receipt template.
//
// The template ships inside the binary so the tool works out of the box when
// no template file exists at the default path.
package assets

import _ "embed"

//go:embed templates/receipt.html
var receiptTemplate string

// ReceiptTemplate returns the built-in receipt template source.
func ReceiptTemplate() string {
	return receiptTemplate
}
