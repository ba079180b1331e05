package csv2pdf

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"
)

var exportTime = time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)

func TestExport(t *testing.T) {
	t.Run("writes timestamped file", func(t *testing.T) {
		dir := t.TempDir()

		path, err := Export([]byte("%PDF-1.4 fake"), dir, exportTime)
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}

		wantName := "check_20260830_140509.pdf"
		if filepath.Base(path) != wantName {
			t.Errorf("file name = %q, want %q", filepath.Base(path), wantName)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if string(data) != "%PDF-1.4 fake" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("creates the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")

		path, err := Export([]byte("pdf"), dir, exportTime)
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file missing: %v", err)
		}
	})

	t.Run("same-second rerun gets a suffix, never overwrites", func(t *testing.T) {
		dir := t.TempDir()

		first, err := Export([]byte("first"), dir, exportTime)
		if err != nil {
			t.Fatalf("first Export() error = %v", err)
		}
		second, err := Export([]byte("second"), dir, exportTime)
		if err != nil {
			t.Fatalf("second Export() error = %v", err)
		}

		if first == second {
			t.Fatalf("second run reused path %q", first)
		}
		if want := "check_20260830_140509_1.pdf"; filepath.Base(second) != want {
			t.Errorf("second file name = %q, want %q", filepath.Base(second), want)
		}

		data, err := os.ReadFile(first)
		if err != nil {
			t.Fatalf("reading first output: %v", err)
		}
		if string(data) != "first" {
			t.Errorf("first file was overwritten: %q", data)
		}
	})

	t.Run("empty PDF fails with ErrRenderFailure", func(t *testing.T) {
		_, err := Export(nil, t.TempDir(), exportTime)
		if !errors.Is(err, ErrRenderFailure) {
			t.Errorf("error = %v, want ErrRenderFailure", err)
		}
	})

	t.Run("unwritable directory fails with ErrOutputDirUnwritable", func(t *testing.T) {
		// A regular file where the directory should be makes MkdirAll fail.
		blocker := filepath.Join(t.TempDir(), "blocked")
		if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := Export([]byte("pdf"), blocker, exportTime)
		if !errors.Is(err, ErrOutputDirUnwritable) {
			t.Errorf("error = %v, want ErrOutputDirUnwritable", err)
		}
	})

	t.Run("no partial file is left on failure", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocked")
		if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, _ = Export([]byte("pdf"), blocker, exportTime)

		entries, err := os.ReadDir(filepath.Dir(blocker))
		if err != nil {
			t.Fatalf("reading dir: %v", err)
		}
		for _, e := range entries {
			if matched, _ := regexp.MatchString(`\.pdf$`, e.Name()); matched {
				t.Errorf("stray PDF left behind: %s", e.Name())
			}
		}
	})
}

func TestExportHTML(t *testing.T) {
	t.Run("writes timestamped HTML file", func(t *testing.T) {
		dir := t.TempDir()

		path, err := ExportHTML("<html></html>", dir, exportTime)
		if err != nil {
			t.Fatalf("ExportHTML() error = %v", err)
		}
		if want := "check_20260830_140509.html"; filepath.Base(path) != want {
			t.Errorf("file name = %q, want %q", filepath.Base(path), want)
		}
	})

	t.Run("empty markup fails", func(t *testing.T) {
		_, err := ExportHTML("", t.TempDir(), exportTime)
		if !errors.Is(err, ErrEmptyTemplate) {
			t.Errorf("error = %v, want ErrEmptyTemplate", err)
		}
	})
}
