package hints

import (
	"strings"
	"testing"
)

func TestForBrowserConnect(t *testing.T) {
	t.Run("suggests sandbox flag in container", func(t *testing.T) {
		orig := IsInContainer
		IsInContainer = func() bool { return true }
		defer func() { IsInContainer = orig }()

		t.Setenv("ROD_NO_SANDBOX", "")
		t.Setenv("ROD_BROWSER_BIN", "")

		hint := ForBrowserConnect()
		if !strings.Contains(hint, "ROD_NO_SANDBOX") {
			t.Errorf("hint = %q, want ROD_NO_SANDBOX suggestion", hint)
		}
	})

	t.Run("suggests browser binary when unset", func(t *testing.T) {
		t.Setenv("ROD_BROWSER_BIN", "")

		hint := ForBrowserConnect()
		if !strings.Contains(hint, "ROD_BROWSER_BIN") {
			t.Errorf("hint = %q, want ROD_BROWSER_BIN suggestion", hint)
		}
	})
}

func TestForConfigNotFound(t *testing.T) {
	t.Run("suggests user config path when searched", func(t *testing.T) {
		hint := ForConfigNotFound([]string{
			"receipt.yaml",
			"/home/u/.config/csv2pdf/receipt.yaml",
		})
		if !strings.Contains(hint, ".config/csv2pdf/receipt.yaml") {
			t.Errorf("hint = %q", hint)
		}
	})

	t.Run("falls back to flag suggestion", func(t *testing.T) {
		hint := ForConfigNotFound(nil)
		if !strings.Contains(hint, "--config") {
			t.Errorf("hint = %q", hint)
		}
	})
}

func TestHintFormatting(t *testing.T) {
	for name, hint := range map[string]string{
		"ForTimeout":         ForTimeout(),
		"ForOutputDirectory": ForOutputDirectory(),
		"ForDelimiter":       ForDelimiter(),
		"ForMissingColumns":  ForMissingColumns(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s = %q, want \"\\n  hint: \" prefix", name, hint)
		}
	}
}
