package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellmaintained/lice/internal/config"
	"github.com/wellmaintained/lice/internal/errors"
)

// resetGenFlags restores the package-level flag state tests mutate.
func resetGenFlags(t *testing.T) {
	t.Helper()
	genHeader = false
	genOrg = ""
	genProject = ""
	genTemplate = ""
	genYear = "2024"
	genLanguage = "txt"
	genOutput = ""
	genListVars = false
}

// isolateConfig points the XDG config lookup at an empty directory so
// a developer's real ~/.config/lice/config.toml cannot leak into tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
}

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "lice [license]", rootCmd.Use)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	var names []string
	for _, subcmd := range rootCmd.Commands() {
		names = append(names, subcmd.Name())
	}

	assert.Contains(t, names, "licenses")
	assert.Contains(t, names, "languages")
}

func TestSetVersion(t *testing.T) {
	testVersion := "v1.2.3"
	SetVersion(testVersion)

	assert.Equal(t, testVersion, rootCmd.Version)
}

func TestGenerateFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.Flags().Lookup("header"))
	assert.NotNil(t, rootCmd.Flags().Lookup("org"))
	assert.NotNil(t, rootCmd.Flags().Lookup("proj"))
	assert.NotNil(t, rootCmd.Flags().Lookup("template"))
	assert.NotNil(t, rootCmd.Flags().Lookup("year"))
	assert.NotNil(t, rootCmd.Flags().Lookup("language"))
	assert.NotNil(t, rootCmd.Flags().Lookup("file"))
	assert.NotNil(t, rootCmd.Flags().Lookup("vars"))

	language, _ := rootCmd.Flags().GetString("language")
	assert.Equal(t, "txt", language)

	year, _ := rootCmd.Flags().GetString("year")
	assert.Regexp(t, `^\d{4}$`, year)
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		year     string
		header   bool
		listVars bool
		wantErr  bool
		errMsg   string
	}{
		{
			name:    "defaults pass",
			args:    []string{},
			year:    "2024",
			wantErr: false,
		},
		{
			name:    "bundled license passes",
			args:    []string{"mit"},
			year:    "2024",
			wantErr: false,
		},
		{
			name:    "two digit year rejected",
			args:    []string{},
			year:    "24",
			wantErr: true,
			errMsg:  "four digit year",
		},
		{
			name:    "five digit year rejected",
			args:    []string{},
			year:    "20245",
			wantErr: true,
			errMsg:  "four digit year",
		},
		{
			name:    "non-numeric year rejected",
			args:    []string{},
			year:    "MMXXIV",
			wantErr: true,
			errMsg:  "four digit year",
		},
		{
			name:    "unknown license rejected",
			args:    []string{"proprietary"},
			year:    "2024",
			wantErr: true,
			errMsg:  "unknown license",
		},
		{
			name:     "header and vars exclusive",
			args:     []string{"mit"},
			year:     "2024",
			header:   true,
			listVars: true,
			wantErr:  true,
			errMsg:   "--header and --vars are mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGenFlags(t)
			genYear = tt.year
			genHeader = tt.header
			genListVars = tt.listVars

			cmd := &cobra.Command{}
			err := rootCmd.PreRunE(cmd, tt.args)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Equal(t, 2, errors.GetExitCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunGenerateCustomTemplate(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{
			name: "plain text",
			lang: "txt",
			want: "\nCopyright 2024 Acme\n\n",
		},
		{
			name: "hash comments",
			lang: "py",
			want: "\n# Copyright 2024 Acme\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			resetGenFlags(t)

			path := filepath.Join(t.TempDir(), "custom.txt")
			require.NoError(t, os.WriteFile(path, []byte("Copyright {{ year }} {{ organization }}"), 0644))

			genTemplate = path
			genLanguage = tt.lang
			genOrg = "Acme"

			var buf bytes.Buffer
			err := runGenerate(rootCmd, nil, &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunGenerateBundledLicense(t *testing.T) {
	isolateConfig(t)
	resetGenFlags(t)
	genOrg = "Acme"
	genProject = "widget"

	var buf bytes.Buffer
	err := runGenerate(rootCmd, []string{"mit"}, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "The MIT License (MIT)")
	assert.Contains(t, buf.String(), "Copyright (c) 2024 Acme")
	assert.NotContains(t, buf.String(), "{{")
}

func TestRunGenerateMissingHeader(t *testing.T) {
	isolateConfig(t)
	resetGenFlags(t)
	genHeader = true

	var buf bytes.Buffer
	err := runGenerate(rootCmd, []string{"bsd3"}, &buf)
	require.Error(t, err)

	var notFoundErr *errors.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, 1, errors.GetExitCode(err))
	assert.Empty(t, buf.String())
}

func TestRunGenerateHeaderVariant(t *testing.T) {
	isolateConfig(t)
	resetGenFlags(t)
	genHeader = true
	genLanguage = "py"
	genOrg = "Acme"

	var buf bytes.Buffer
	err := runGenerate(rootCmd, []string{"apache"}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "# Copyright 2024 Acme")
}

func TestRunGenerateListVars(t *testing.T) {
	isolateConfig(t)
	resetGenFlags(t)

	path := filepath.Join(t.TempDir(), "custom.txt")
	require.NoError(t, os.WriteFile(path, []byte("{{ project }} contact {{ email }}"), 0644))

	genTemplate = path
	genProject = "widget"
	genListVars = true

	var buf bytes.Buffer
	err := runGenerate(rootCmd, nil, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "contains the following variables and defaults:")
	assert.Contains(t, buf.String(), "  project = widget\n")
	// email has no context value, so it is listed bare.
	assert.Contains(t, buf.String(), "  email\n")
	assert.NotContains(t, buf.String(), "email =")
}

func TestRunGenerateListVarsEmpty(t *testing.T) {
	isolateConfig(t)
	resetGenFlags(t)

	path := filepath.Join(t.TempDir(), "custom.txt")
	require.NoError(t, os.WriteFile(path, []byte("no placeholders"), 0644))

	genTemplate = path
	genListVars = true

	var buf bytes.Buffer
	err := runGenerate(rootCmd, nil, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "contains no variables")
}

func TestRunGenerateWritesOutputFile(t *testing.T) {
	isolateConfig(t)
	resetGenFlags(t)

	dir := t.TempDir()
	genOutput = filepath.Join(dir, "LICENSE")
	genOrg = "Acme"
	genProject = "widget"

	var buf bytes.Buffer
	err := runGenerate(rootCmd, []string{"mit"}, &buf)
	require.NoError(t, err)

	// Nothing on stdout; the language tag became the extension.
	assert.Empty(t, buf.String())
	content, err := os.ReadFile(filepath.Join(dir, "LICENSE.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Copyright (c) 2024 Acme")
}

func TestRunGenerateConfigDefaults(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	require.NoError(t, os.MkdirAll(filepath.Join(configHome, "lice"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configHome, "lice", "config.toml"),
		[]byte("organization = \"Config Org\"\nlicense = \"mit\"\n"), 0644))

	resetGenFlags(t)

	var buf bytes.Buffer
	err := runGenerate(rootCmd, nil, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "The MIT License (MIT)")
	assert.Contains(t, buf.String(), "Config Org")
}

func TestRunGenerateConfigUnknownLicense(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	require.NoError(t, os.MkdirAll(filepath.Join(configHome, "lice"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configHome, "lice", "config.toml"),
		[]byte("license = \"mti\"\n"), 0644))

	resetGenFlags(t)

	var buf bytes.Buffer
	err := runGenerate(rootCmd, nil, &buf)
	require.Error(t, err)

	var configurationErr *errors.ConfigurationError
	require.ErrorAs(t, err, &configurationErr)
	// The diagnostic names the typo and the valid set.
	assert.Contains(t, err.Error(), "mti")
	assert.Contains(t, err.Error(), "mit")
	assert.Equal(t, 2, errors.GetExitCode(err))
}

func TestBuildContext(t *testing.T) {
	isolateConfig(t)
	resetGenFlags(t)
	genOrg = "Acme"
	genProject = "widget"
	genYear = "1999"

	context := buildContext(rootCmd, mustLoadEmptyConfig(t))

	assert.Equal(t, "1999", context["year"])
	assert.Equal(t, "Acme", context["organization"])
	assert.Equal(t, "widget", context["project"])
}

func TestBuildContextProjectDefaultsToCwd(t *testing.T) {
	isolateConfig(t)
	resetGenFlags(t)
	genOrg = "Acme"

	wd, err := os.Getwd()
	require.NoError(t, err)

	context := buildContext(rootCmd, mustLoadEmptyConfig(t))
	assert.Equal(t, filepath.Base(wd), context["project"])
}

func mustLoadEmptyConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}
