// Package ui provides terminal output utilities for lice: colored
// diagnostics on stderr and aligned tables for the list commands.
// Colors respect the NO_COLOR environment variable and TTY detection.
package ui

import (
	"os"

	"github.com/fatih/color"
)

// Error prints a red-colored diagnostic to stderr.
func Error(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, format, args...)
}

// Warning prints a yellow-colored diagnostic to stderr.
func Warning(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format, args...)
}

// Info prints a cyan-colored message to stderr.
func Info(format string, args ...interface{}) {
	color.New(color.FgCyan).Fprintf(os.Stderr, format, args...)
}
