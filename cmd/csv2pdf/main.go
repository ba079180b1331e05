package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	csv2pdf "github.com/ai4bordon/csv2pdf-cli"
	"github.com/ai4bordon/csv2pdf-cli/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(ExitSuccess)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Println("csv2pdf " + Version)
		return
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg := DefaultConfig()
	if flags.config != "" {
		cfg, err = LoadConfig(flags.config)
		if err != nil {
			fail(err)
		}
	}

	params, err := resolveParams(flags, cfg)
	if err != nil {
		fail(err)
	}

	var opts []csv2pdf.Option
	if params.timeout > 0 {
		opts = append(opts, csv2pdf.WithTimeout(params.timeout))
	}
	svc := csv2pdf.New(opts...)

	runErr := run(context.Background(), params, DefaultEnv(), svc)

	// Close on every exit path; os.Exit would skip a deferred close.
	if closeErr := svc.Close(); closeErr != nil && runErr == nil {
		fmt.Fprintf(os.Stderr, "warning: closing browser: %v\n", closeErr)
	}

	if runErr != nil {
		fail(runErr)
	}
}

// fail prints the error with any applicable hint and exits.
func fail(err error) {
	fmt.Fprintln(os.Stderr, "error: "+err.Error()+hintFor(err))
	os.Exit(exitCodeFor(err))
}

// hintFor maps an error to an actionable hint, if one exists.
func hintFor(err error) string {
	switch {
	case errors.Is(err, csv2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, csv2pdf.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, csv2pdf.ErrOutputDirUnwritable):
		return hints.ForOutputDirectory()
	case errors.Is(err, csv2pdf.ErrDelimiterDetect):
		return hints.ForDelimiter()
	case errors.Is(err, csv2pdf.ErrMissingColumn):
		return hints.ForMissingColumns()
	case errors.Is(err, ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	}
	return ""
}
