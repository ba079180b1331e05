package main

import (
	"fmt"
	"time"

	csv2pdf "github.com/ai4bordon/csv2pdf-cli"
	"github.com/ai4bordon/csv2pdf-cli/internal/dateutil"
)

// runParams is the fully resolved configuration for one run.
// Precedence: explicit flags > config file > built-in defaults.
type runParams struct {
	inputPath    string
	templatePath string
	outputDir    string
	delimiter    rune
	open         bool
	timeout      time.Duration
	dateFormat   string // resolved Go time layout, "" = library default
	page         *csv2pdf.PageSettings
	htmlOnly     bool
	quiet        bool
	verbose      bool
}

// resolveParams merges flags and config into run parameters, validating
// everything that can fail before the browser is launched.
func resolveParams(f *cliFlags, cfg *Config) (*runParams, error) {
	p := &runParams{
		inputPath:    resolveString(f.changed("input"), f.input, cfg.Input, defaultInputPath),
		templatePath: resolveString(f.changed("template"), f.template, cfg.Template, defaultTemplatePath),
		outputDir:    resolveString(f.changed("output-dir"), f.outputDir, cfg.OutputDir, defaultOutputDir),
		htmlOnly:     f.htmlOnly,
		quiet:        f.quiet,
		verbose:      f.verbose,
	}

	if f.changed("open") {
		p.open = f.open
	} else {
		p.open = cfg.Open
	}

	delimiter, err := parseDelimiter(resolveString(f.changed("delimiter"), f.delimiter, cfg.Delimiter, ""))
	if err != nil {
		return nil, err
	}
	p.delimiter = delimiter

	timeout, err := parseTimeout(resolveString(f.changed("timeout"), f.timeout, cfg.Timeout, ""))
	if err != nil {
		return nil, err
	}
	p.timeout = timeout

	if format := resolveString(f.changed("date-format"), f.dateFormat, cfg.DateFormat, ""); format != "" {
		layout, err := dateutil.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		p.dateFormat = layout
	}

	page, err := resolvePage(f, cfg.Page)
	if err != nil {
		return nil, err
	}
	p.page = page

	return p, nil
}

// resolveString applies flag > config > default precedence for one value.
func resolveString(flagChanged bool, flagValue, configValue, defaultValue string) string {
	if flagChanged {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return defaultValue
}

// parseDelimiter converts the delimiter option to a rune.
// Empty means auto-detect.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("%w: %q", csv2pdf.ErrInvalidDelimiter, s)
	}
}

// parseTimeout converts the timeout option to a duration.
// Empty means the library default.
func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, s)
	}
	return d, nil
}

// resolvePage merges page layout flags and config. Returns nil when nothing
// was set, letting the library apply its defaults.
func resolvePage(f *cliFlags, cfg PageConfig) (*csv2pdf.PageSettings, error) {
	size := resolveString(f.changed("page-size"), f.pageSize, cfg.Size, "")
	orientation := resolveString(f.changed("orientation"), f.orientation, cfg.Orientation, "")

	margin := cfg.Margin
	if f.changed("margin") {
		margin = f.margin
	}

	if size == "" && orientation == "" && margin == 0 {
		return nil, nil
	}

	page := csv2pdf.DefaultPageSettings()
	if size != "" {
		page.Size = size
	}
	if orientation != "" {
		page.Orientation = orientation
	}
	if margin != 0 {
		page.Margin = margin
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}
