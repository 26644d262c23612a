package license

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/wellmaintained/lice/internal/errors"
)

// LoadBundled loads a bundled license template and returns its text
// decorated with the comment style of lang. With header set it loads
// the source-file header variant instead of the full license body; a
// missing header variant is the expected failure here and is returned
// as a NotFoundError.
func LoadBundled(name, lang string, header bool) (string, error) {
	style, err := ResolveStyle(lang)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("template-%s.txt", name)
	if header {
		filename = fmt.Sprintf("template-%s-header.txt", name)
	}

	raw, err := fs.ReadFile(templateFS, "templates/"+filename)
	if err != nil {
		if header {
			return "", errors.NewNotFoundError(
				fmt.Sprintf("no source header available for %s", name), err)
		}
		return "", errors.NewNotFoundError(
			fmt.Sprintf("no bundled template for license %q", name), err)
	}

	return Decorate(string(raw), style), nil
}

// LoadFile loads a template from a filesystem path and returns its
// text decorated with the comment style of lang. The path may contain
// ~ and environment variable references.
func LoadFile(path, lang string) (string, error) {
	style, err := ResolveStyle(lang)
	if err != nil {
		return "", err
	}

	resolved, err := CleanPath(path)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError(
				fmt.Sprintf("template path does not exist: %s", resolved), err)
		}
		return "", errors.NewRuntimeError(
			fmt.Sprintf("failed to read template %s", resolved), err)
	}
	if !utf8.Valid(raw) {
		return "", errors.NewEncodingError(
			fmt.Sprintf("template %s is not valid UTF-8", resolved), nil)
	}

	return Decorate(string(raw), style), nil
}

// Decorate wraps raw template text in a comment style: the open marker
// on its own line, every template line behind the per-line prefix, and
// the close marker on its own line. Empty markers collapse to bare
// line breaks so the plain text style passes content through with only
// a blank line on either side. Lines are never reflowed.
func Decorate(text string, style CommentStyle) string {
	var b strings.Builder
	b.WriteString(style.Open)
	b.WriteByte('\n')
	for _, line := range splitLines(text) {
		if style.Line != "" {
			b.WriteString(style.Line)
			b.WriteByte(' ')
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(style.Close)
	b.WriteByte('\n')
	return b.String()
}

// splitLines splits template text into lines without inventing a
// trailing empty line when the text ends in a newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// CleanPath expands ~, ~user, and environment variable references in
// path and converts it to an absolute path.
func CleanPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		expanded, err := expandUser(path)
		if err != nil {
			return "", err
		}
		path = expanded
	}
	path = os.ExpandEnv(path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.NewRuntimeError(
			fmt.Sprintf("cannot resolve path %s", path), err)
	}
	return abs, nil
}

// expandUser resolves a leading ~ to the current home directory or
// ~name to that user's home directory. An unknown user leaves the
// path untouched.
func expandUser(path string) (string, error) {
	rest := path[1:]
	name := rest
	if sep := strings.IndexAny(rest, "/"+string(filepath.Separator)); sep >= 0 {
		name = rest[:sep]
	}

	if name == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.NewRuntimeError("cannot resolve home directory", err)
		}
		return filepath.Join(home, rest), nil
	}

	u, err := user.Lookup(name)
	if err != nil {
		return path, nil
	}
	return filepath.Join(u.HomeDir, rest[len(name):]), nil
}
