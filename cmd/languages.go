package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/lice/internal/errors"
	"github.com/wellmaintained/lice/internal/ui"
	"github.com/wellmaintained/lice/pkg/license"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported language tags",
	Long: `List every language tag usable with --language, together with the
comment style its output is wrapped in.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLanguages(os.Stdout); err != nil {
			ui.Error("Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runLanguages(w io.Writer) error {
	headers := []string{"Tag", "Style", "Markers"}
	var rows [][]string
	for _, tag := range license.Languages() {
		name, err := license.StyleName(tag)
		if err != nil {
			return err
		}
		style, err := license.ResolveStyle(tag)
		if err != nil {
			return err
		}

		markers := "(plain text)"
		if style != (license.CommentStyle{}) {
			markers = fmt.Sprintf("%q %q %q", style.Open, style.Line, style.Close)
		}
		rows = append(rows, []string{tag, name, markers})
	}
	return ui.PrintTable(w, headers, rows)
}
