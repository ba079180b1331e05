// Package opener launches the OS default viewer for a file.
//
// The platform-specific command is selected at build time (build tags), not
// through runtime branching, so each platform ships exactly one code path.
package opener

import (
	"fmt"
	"io"
)

// Opener is the capability to open a file with the system default application.
type Opener interface {
	Open(path string) error
}

// System returns the Opener for the current platform.
func System() Opener {
	return systemOpener{}
}

// systemOpener shells out to the platform open command.
type systemOpener struct{}

// Open runs the platform command, discarding its output. The command's
// failure is returned to the caller; callers treat it as a warning, never as
// a fatal error.
func (systemOpener) Open(path string) error {
	cmd := openCommand(path)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return nil
}
