// Package cmd defines command-line interface commands for lice.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/lice/internal/config"
	"github.com/wellmaintained/lice/internal/errors"
	"github.com/wellmaintained/lice/internal/logging"
	"github.com/wellmaintained/lice/internal/ui"
	"github.com/wellmaintained/lice/internal/vcs"
	"github.com/wellmaintained/lice/pkg/license"
)

var version string

var (
	genHeader   bool
	genOrg      string
	genProject  string
	genTemplate string
	genYear     string
	genLanguage string
	genOutput   string
	genListVars bool
	verbosity   int
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

var rootCmd = &cobra.Command{
	Use:   "lice [license]",
	Short: "Generate license text and source file headers",
	Long: `lice generates license text, or license headers for source files, from
bundled templates. Placeholders for the year, organization, and project
are filled in from flags or guessed from git config and the current
directory, and the output can be wrapped in the comment syntax of a
target language.`,
	Example: `  # Print the default license (bsd3) to stdout
  lice

  # Print the MIT license for a named organization and year
  lice mit -o "Acme Corp" -y 2024

  # Generate an Apache 2.0 header formatted as a Python comment
  lice apache --header -l py

  # Write the license to LICENSE.txt
  lice mit -f LICENSE

  # Use a custom template and list its variables
  lice -t ~/templates/internal.txt --vars`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		var errs []error

		if !yearPattern.MatchString(genYear) {
			errs = append(errs, fmt.Errorf("--year must be a four digit year (got %q)", genYear))
		}

		if len(args) == 1 && !license.IsLicense(args[0]) {
			errs = append(errs, fmt.Errorf("unknown license %q, one of: %s",
				args[0], strings.Join(license.Licenses(), ", ")))
		}

		if genHeader && genListVars {
			errs = append(errs, fmt.Errorf("--header and --vars are mutually exclusive"))
		}

		if len(errs) > 0 {
			combined := "Validation errors:\n"
			for _, err := range errs {
				combined += fmt.Sprintf("  - %s\n", err)
			}
			return errors.NewValidationError(combined, nil)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd, args, os.Stdout); err != nil {
			ui.Error("Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

// runGenerate is the default, header, and list-vars mode in one: load
// the template, then either list its variables or render it to stdout
// or an output file.
func runGenerate(cmd *cobra.Command, args []string, stdout io.Writer) error {
	logger := logging.GetLogger("cli")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	name := license.DefaultLicense
	if cfg.License != "" {
		// Config defaults bypass PreRunE, so a typo in config.toml
		// gets the same diagnostic a bad positional argument would.
		if !license.IsLicense(cfg.License) {
			return errors.NewConfigurationError(
				fmt.Sprintf("config file names unknown license %q, one of: %s",
					cfg.License, strings.Join(license.Licenses(), ", ")), nil)
		}
		name = cfg.License
	}
	if len(args) == 1 {
		name = args[0]
	}

	lang := genLanguage
	if !cmd.Flags().Changed("language") && cfg.Language != "" {
		lang = cfg.Language
	}

	var decorated string
	templateID := name
	if genTemplate != "" {
		templateID = genTemplate
		decorated, err = license.LoadFile(genTemplate, lang)
	} else {
		decorated, err = license.LoadBundled(name, lang, genHeader)
	}
	if err != nil {
		return err
	}

	context := buildContext(cmd, cfg)

	if genListVars {
		return listVars(stdout, templateID, decorated, context)
	}

	rendered, err := license.Render(decorated, context)
	if err != nil {
		return err
	}

	// Headers go to stdout for piping into source files; -f only
	// applies to full license bodies.
	if genOutput != "" && !genHeader {
		outPath := genOutput + "." + lang
		if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
			return errors.NewRuntimeError(
				fmt.Sprintf("failed to write %s", outPath), err)
		}
		logger.Info().Str("path", outPath).Msg("wrote license file")
		return nil
	}

	fmt.Fprint(stdout, rendered)
	return nil
}

// buildContext assembles the substitution context for one invocation.
// Precedence per key: explicit flag, then config file, then the
// guessed default.
func buildContext(cmd *cobra.Command, cfg *config.Config) map[string]string {
	org := genOrg
	if org == "" {
		org = cfg.Organization
	}
	if org == "" {
		org = vcs.GuessOrganization(cmd.Context())
	}

	project := genProject
	if project == "" {
		if wd, err := os.Getwd(); err == nil {
			project = filepath.Base(wd)
		}
	}

	return map[string]string{
		"year":         genYear,
		"organization": org,
		"project":      project,
	}
}

// listVars prints the variables a template contains, with their
// resolved context values where one exists.
func listVars(w io.Writer, templateID, decorated string, context map[string]string) error {
	vars := license.ExtractVars(decorated)
	if len(vars) == 0 {
		fmt.Fprintf(w, "The %s license template contains no variables.\n", templateID)
		return nil
	}

	fmt.Fprintf(w, "The %s license template contains the following variables and defaults:\n", templateID)
	for _, name := range vars {
		if value, ok := context[name]; ok {
			fmt.Fprintf(w, "  %s = %s\n", name, value)
		} else {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	return nil
}

// Execute runs the root CLI command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = version
}

func init() {
	rootCmd.Flags().BoolVar(&genHeader, "header", false, "generate a source file header for the license")
	rootCmd.Flags().StringVarP(&genOrg, "org", "o", "", "organization, defaults to git config user.name or the OS user")
	rootCmd.Flags().StringVarP(&genProject, "proj", "p", "", "project name, defaults to the current directory name")
	rootCmd.Flags().StringVarP(&genTemplate, "template", "t", "", "path to a custom license template file")
	rootCmd.Flags().StringVarP(&genYear, "year", "y", fmt.Sprintf("%d", time.Now().Year()), "copyright year")
	rootCmd.Flags().StringVarP(&genLanguage, "language", "l", license.DefaultLanguage, "format output as a comment for this language")
	rootCmd.Flags().StringVarP(&genOutput, "file", "f", "", "output base name; the language tag becomes the extension")
	rootCmd.Flags().BoolVar(&genListVars, "vars", false, "list the template variables for the license")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity")

	rootCmd.AddCommand(licensesCmd)
	rootCmd.AddCommand(languagesCmd)
}
