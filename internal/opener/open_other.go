//go:build !windows && !darwin

package opener

import "os/exec"

// openCommand opens the file via the freedesktop launcher.
func openCommand(path string) *exec.Cmd {
	return exec.Command("xdg-open", path)
}
