package main

import (
	"io"
	"os"
	"time"

	"github.com/ai4bordon/csv2pdf-cli/internal/opener"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and the OS open-file capability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Opener opener.Opener
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Opener: opener.System(),
	}
}
