package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Fs      afero.Fs            // Pages, output and custom assets
	Getenv  func(string) string // Environment lookup
	Environ func() []string     // Full environment, for typo detection
}

// DefaultEnv returns the production environment backed by the OS.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Fs:      afero.NewOsFs(),
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}
