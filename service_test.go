package csv2pdf

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeConverter implements pdfConverter without a browser.
type fakeConverter struct {
	lastHTML string
	lastOpts *pdfOptions
	pdf      []byte
	err      error
	calls    int
	closed   bool
}

func (f *fakeConverter) ToPDF(_ context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	f.calls++
	f.lastHTML = htmlContent
	f.lastOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func (f *fakeConverter) Close() error {
	f.closed = true
	return nil
}

const testTemplate = `<html><body>
{{range .Items}}<div>{{.Product}}: {{.Subtotal}}</div>{{end}}
<b>{{.Total}}</b> at {{.GeneratedAt}}
</body></html>`

func newTestService(conv pdfConverter) *Service {
	s := New(WithClock(func() time.Time {
		return time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)
	}))
	s.pdfConverter = conv
	return s
}

func TestServiceGenerate(t *testing.T) {
	t.Run("full pipeline with comma CSV", func(t *testing.T) {
		conv := &fakeConverter{pdf: []byte("pdf-bytes")}
		s := newTestService(conv)

		result, err := s.Generate(context.Background(), Input{
			CSV:      "product,price,qty\nApple,1.50,3\n",
			Template: testTemplate,
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(result.Receipt.Items) != 1 {
			t.Fatalf("len(Items) = %d, want 1", len(result.Receipt.Items))
		}
		if !strings.Contains(result.HTML, "Apple: 4.50") {
			t.Errorf("HTML missing subtotal:\n%s", result.HTML)
		}
		if string(result.PDF) != "pdf-bytes" {
			t.Errorf("PDF = %q", result.PDF)
		}
		if conv.lastHTML != result.HTML {
			t.Error("converter did not receive the rendered HTML")
		}
	})

	t.Run("semicolon delimiter is auto-detected", func(t *testing.T) {
		conv := &fakeConverter{pdf: []byte("pdf")}
		s := newTestService(conv)

		result, err := s.Generate(context.Background(), Input{
			CSV:      "product;price;qty\nApple;1.50;3\nBanana;0.75;6\n",
			Template: testTemplate,
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if got := result.Receipt.Total().StringFixed(2); got != "9.00" {
			t.Errorf("Total = %s, want 9.00", got)
		}
	})

	t.Run("fixed delimiter overrides detection", func(t *testing.T) {
		conv := &fakeConverter{pdf: []byte("pdf")}
		s := newTestService(conv)

		// Commas inside the single semicolon-delimited product cell.
		_, err := s.Generate(context.Background(), Input{
			CSV:       "product;price;qty\nRice, brown;2.00;1\n",
			Template:  testTemplate,
			Delimiter: ';',
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
	})

	t.Run("invalid rows are reported, run continues", func(t *testing.T) {
		conv := &fakeConverter{pdf: []byte("pdf")}
		s := newTestService(conv)

		result, err := s.Generate(context.Background(), Input{
			CSV:      "product,price,qty\nApple,1.50,3\nBanana,-0.50,2\n",
			Template: testTemplate,
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(result.RowErrors) != 1 {
			t.Fatalf("len(RowErrors) = %d, want 1", len(result.RowErrors))
		}
		if !errors.Is(result.RowErrors[0], ErrInvalidPrice) {
			t.Errorf("RowErrors[0] = %v, want ErrInvalidPrice", result.RowErrors[0])
		}
		if got := result.Receipt.Total().StringFixed(2); got != "4.50" {
			t.Errorf("Total = %s, want 4.50", got)
		}
	})

	t.Run("zero valid rows surfaces failures with ErrEmptyReceipt", func(t *testing.T) {
		conv := &fakeConverter{pdf: []byte("pdf")}
		s := newTestService(conv)

		result, err := s.Generate(context.Background(), Input{
			CSV:      "product,price,qty\n,1.50,3\n",
			Template: testTemplate,
		})
		if !errors.Is(err, ErrEmptyReceipt) {
			t.Fatalf("error = %v, want ErrEmptyReceipt", err)
		}
		if len(result.RowErrors) != 1 {
			t.Errorf("len(RowErrors) = %d, want 1", len(result.RowErrors))
		}
		if conv.calls != 0 {
			t.Error("converter called despite empty receipt")
		}
	})

	t.Run("HTMLOnly skips PDF conversion", func(t *testing.T) {
		conv := &fakeConverter{pdf: []byte("pdf")}
		s := newTestService(conv)

		result, err := s.Generate(context.Background(), Input{
			CSV:      "product,price,qty\nApple,1.50,3\n",
			Template: testTemplate,
			HTMLOnly: true,
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if result.PDF != nil {
			t.Error("PDF set in HTML-only mode")
		}
		if conv.calls != 0 {
			t.Error("converter called in HTML-only mode")
		}
	})

	t.Run("clock controls the receipt timestamp", func(t *testing.T) {
		conv := &fakeConverter{pdf: []byte("pdf")}
		s := newTestService(conv)

		result, err := s.Generate(context.Background(), Input{
			CSV:      "product,price,qty\nApple,1.50,3\n",
			Template: testTemplate,
		})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if !strings.Contains(result.HTML, "2026-08-30 14:05:09") {
			t.Errorf("HTML missing fixed timestamp:\n%s", result.HTML)
		}
	})

	t.Run("converter failure is propagated", func(t *testing.T) {
		conv := &fakeConverter{err: ErrRenderFailure}
		s := newTestService(conv)

		_, err := s.Generate(context.Background(), Input{
			CSV:      "product,price,qty\nApple,1.50,3\n",
			Template: testTemplate,
		})
		if !errors.Is(err, ErrRenderFailure) {
			t.Errorf("error = %v, want ErrRenderFailure", err)
		}
	})

	t.Run("template referencing unknown field fails", func(t *testing.T) {
		conv := &fakeConverter{pdf: []byte("pdf")}
		s := newTestService(conv)

		_, err := s.Generate(context.Background(), Input{
			CSV:      "product,price,qty\nApple,1.50,3\n",
			Template: `{{.Discount}}`,
		})
		if !errors.Is(err, ErrTemplateRender) {
			t.Errorf("error = %v, want ErrTemplateRender", err)
		}
		if conv.calls != 0 {
			t.Error("converter called despite render failure")
		}
	})

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{"empty CSV", Input{CSV: " ", Template: testTemplate}, ErrEmptyInput},
		{"empty template", Input{CSV: "product,price,qty\n", Template: ""}, ErrEmptyTemplate},
		{"bad delimiter", Input{CSV: "product,price,qty\n", Template: testTemplate, Delimiter: '|'}, ErrInvalidDelimiter},
		{"bad page size", Input{CSV: "product,price,qty\n", Template: testTemplate, Page: &PageSettings{Size: "huge", Orientation: "portrait", Margin: 0.5}}, ErrInvalidPageSize},
		{"undetectable delimiter", Input{CSV: "product\nApple\n", Template: testTemplate}, ErrDelimiterDetect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(&fakeConverter{})
			_, err := s.Generate(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("cancelled context stops before conversion", func(t *testing.T) {
		conv := &fakeConverter{pdf: []byte("pdf")}
		s := newTestService(conv)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Generate(ctx, Input{
			CSV:      "product,price,qty\nApple,1.50,3\n",
			Template: testTemplate,
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
		if conv.calls != 0 {
			t.Error("converter called after cancellation")
		}
	})
}

func TestServiceClose(t *testing.T) {
	conv := &fakeConverter{}
	s := newTestService(conv)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !conv.closed {
		t.Error("converter not closed")
	}
}
