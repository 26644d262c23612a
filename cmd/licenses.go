package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/lice/internal/errors"
	"github.com/wellmaintained/lice/internal/ui"
	"github.com/wellmaintained/lice/pkg/license"
)

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List bundled license templates",
	Long: `List every bundled license template, marking which ones also ship a
source file header variant usable with --header.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLicenses(os.Stdout); err != nil {
			ui.Error("Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runLicenses(w io.Writer) error {
	headers := []string{"License", "Header"}
	var rows [][]string
	for _, name := range license.Licenses() {
		header := "-"
		if license.HasHeader(name) {
			header = "yes"
		}
		rows = append(rows, []string{name, header})
	}
	return ui.PrintTable(w, headers, rows)
}
