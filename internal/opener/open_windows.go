package opener

import "os/exec"

// openCommand opens the file with the shell's registered handler.
func openCommand(path string) *exec.Cmd {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
}
