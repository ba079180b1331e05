package opener

import "os/exec"

// openCommand opens the file with Finder's default application.
func openCommand(path string) *exec.Cmd {
	return exec.Command("open", path)
}
