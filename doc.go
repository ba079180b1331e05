// Package csv2pdf turns a CSV of purchased items into a PDF receipt.
//
// # Quick Start
//
// Create a service, generate a receipt, and close when done:
//
//	svc := csv2pdf.New()
//	defer svc.Close()
//
//	result, err := svc.Generate(ctx, csv2pdf.Input{
//	    CSV:      "product,price,qty\nApple,1.50,3\n",
//	    Template: templateSource,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := csv2pdf.Export(result.PDF, "output", time.Now())
//
// The result carries the validated Receipt, per-row validation failures, the
// rendered HTML (for debugging), and the PDF bytes. Use Input.HTMLOnly to
// skip PDF generation.
//
// # Pipeline
//
// The generation process follows these stages:
//
//  1. CSV parsing and per-row validation (delimiter auto-detection, decimal
//     prices, integer quantities)
//  2. Receipt aggregation (subtotals, total, generation timestamp)
//  3. HTML rendering via html/template
//  4. PDF rendering via headless Chrome (go-rod)
//
// Invalid rows are skipped and reported in Result.RowErrors; they never abort
// the run unless no valid row remains.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package csv2pdf
