package csv2pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ai4bordon/csv2pdf-cli/internal/fileutil"
)

// Output file naming.
const (
	outputFilePrefix = "check_"
	fileStampLayout  = "20060102_150405"
	outputDirPerm    = 0o750
	outputFilePerm   = 0o600
)

// Export writes PDF bytes to outputDir/check_<YYYYMMDD_HHMMSS>.pdf, creating
// the directory if needed. A rerun within the same second gets a _1, _2...
// suffix instead of silently overwriting the earlier file. The write is
// atomic (temp file then rename), so no partial file survives a failure.
// On success the returned path exists and is non-empty.
func Export(pdf []byte, outputDir string, now time.Time) (string, error) {
	if len(pdf) == 0 {
		return "", fmt.Errorf("%w: empty PDF output", ErrRenderFailure)
	}

	if err := os.MkdirAll(outputDir, outputDirPerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutputDirUnwritable, err)
	}

	path := exportPath(outputDir, outputFilePrefix, "pdf", now)
	if err := fileutil.WriteFileAtomic(path, pdf, outputFilePerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutputDirUnwritable, err)
	}

	return path, nil
}

// exportPath builds a timestamped output path, uniquified against existing
// files with a numeric suffix.
func exportPath(dir, prefix, ext string, now time.Time) string {
	stamp := now.Format(fileStampLayout)

	path := filepath.Join(dir, prefix+stamp+"."+ext)
	for n := 1; fileutil.FileExists(path); n++ {
		path = filepath.Join(dir, fmt.Sprintf("%s%s_%d.%s", prefix, stamp, n, ext))
	}
	return path
}

// ExportHTML writes rendered markup using the same naming and atomicity
// guarantees as Export. Used by the HTML-only debug mode.
func ExportHTML(html string, outputDir string, now time.Time) (string, error) {
	if html == "" {
		return "", ErrEmptyTemplate
	}

	if err := os.MkdirAll(outputDir, outputDirPerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutputDirUnwritable, err)
	}

	path := exportPath(outputDir, outputFilePrefix, "html", now)
	if err := fileutil.WriteFileAtomic(path, []byte(html), outputFilePerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutputDirUnwritable, err)
	}

	return path, nil
}
