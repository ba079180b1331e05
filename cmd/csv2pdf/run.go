package main

import (
	"context"
	"fmt"
	"io"
	"os"

	csv2pdf "github.com/ai4bordon/csv2pdf-cli"
	"github.com/ai4bordon/csv2pdf-cli/internal/assets"
)

// generator is the interface for the receipt generation service.
type generator interface {
	Generate(ctx context.Context, input csv2pdf.Input) (csv2pdf.Result, error)
}

// run executes the pipeline in fixed order: read input, generate, report
// skipped rows, export, optionally open. Skipped rows and open failures are
// warnings; they never change the exit code once a receipt was rendered.
func run(ctx context.Context, params *runParams, env *Environment, svc generator) error {
	csvContent, err := readInputFile(params.inputPath)
	if err != nil {
		return err
	}

	templateSource, err := loadTemplate(params.templatePath, params.verbose, env.Stderr)
	if err != nil {
		return err
	}

	result, err := svc.Generate(ctx, csv2pdf.Input{
		CSV:        csvContent,
		Template:   templateSource,
		Delimiter:  params.delimiter,
		Page:       params.page,
		DateFormat: params.dateFormat,
		HTMLOnly:   params.htmlOnly,
	})

	// Report skipped rows even when generation failed: the failure list is
	// part of the contract, never silently dropped.
	reportRowErrors(result.RowErrors, env.Stderr)
	if err != nil {
		return err
	}

	if params.verbose {
		fmt.Fprintf(env.Stderr, "%d items validated, total %s\n",
			len(result.Receipt.Items), result.Receipt.Total().StringFixed(2))
	}

	if params.htmlOnly {
		path, err := csv2pdf.ExportHTML(result.HTML, params.outputDir, env.Now())
		if err != nil {
			return err
		}
		if !params.quiet {
			fmt.Fprintf(env.Stdout, "HTML written: %s\n", path)
		}
		return nil
	}

	path, err := csv2pdf.Export(result.PDF, params.outputDir, env.Now())
	if err != nil {
		return err
	}

	if !params.quiet {
		fmt.Fprintf(env.Stdout, "Receipt created: %s\n", path)
	}

	if params.open {
		if err := env.Opener.Open(path); err != nil {
			fmt.Fprintf(env.Stderr, "warning: could not open the PDF automatically: %v\n  file saved at: %s\n", err, path)
		}
	}

	return nil
}

// reportRowErrors prints one warning per skipped row.
func reportRowErrors(rowErrors []csv2pdf.RowError, w io.Writer) {
	for _, re := range rowErrors {
		fmt.Fprintf(w, "warning: skipped row %d: %v\n", re.Row, re.Err)
	}
}

// readInputFile reads the CSV file content.
func readInputFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// loadTemplate reads the template file. When the default path is absent the
// embedded template is used, so the tool works out of the box; an explicitly
// chosen path must exist.
func loadTemplate(path string, verbose bool, stderr io.Writer) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}
	if path == defaultTemplatePath {
		if verbose {
			fmt.Fprintln(stderr, "using built-in receipt template")
		}
		return assets.ReceiptTemplate(), nil
	}
	return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
}
