package assets

import (
	"strings"
	"testing"
)

func TestReceiptTemplate(t *testing.T) {
	tpl := ReceiptTemplate()

	if tpl == "" {
		t.Fatal("ReceiptTemplate() is empty")
	}

	// The embedded template must stay within the receipt binding surface.
	for _, want := range []string{
		"{{range .Items}}",
		"{{.Product}}",
		"{{.Price}}",
		"{{.Qty}}",
		"{{.Subtotal}}",
		"{{.Total}}",
		"{{.GeneratedAt}}",
	} {
		if !strings.Contains(tpl, want) {
			t.Errorf("template missing %s", want)
		}
	}
}
