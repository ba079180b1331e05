package opener

import "testing"

func TestOpenCommand(t *testing.T) {
	cmd := openCommand("/tmp/receipt.pdf")

	if len(cmd.Args) == 0 {
		t.Fatal("openCommand() produced no args")
	}
	if got := cmd.Args[len(cmd.Args)-1]; got != "/tmp/receipt.pdf" {
		t.Errorf("last arg = %q, want the file path", got)
	}
}

func TestSystem(t *testing.T) {
	if System() == nil {
		t.Fatal("System() = nil")
	}
}
