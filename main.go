// Package main is the entry point for the lice CLI application.
package main

import (
	"os"

	"github.com/wellmaintained/lice/cmd"
	"github.com/wellmaintained/lice/internal/errors"
	"github.com/wellmaintained/lice/internal/ui"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		// Cobra already printed usage for argument errors; the exit
		// code still follows the error taxonomy.
		ui.Error("Error: %v\n", err)
		os.Exit(errors.GetExitCode(err))
	}
}
