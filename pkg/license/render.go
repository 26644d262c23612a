package license

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wellmaintained/lice/internal/errors"
)

// Placeholders are spelled {{ name }}: double braces with exactly one
// space of padding around a word-character identifier. Any other
// spacing is treated as literal text.
var placeholderPattern = regexp.MustCompile(`\{\{ (\w+) \}\}`)

// ExtractVars returns the distinct placeholder names found in text, in
// lexicographic order.
func ExtractVars(text string) []string {
	seen := make(map[string]bool)
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		seen[match[1]] = true
	}

	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	return vars
}

// Render substitutes every placeholder in text with its value from
// context. A placeholder with no context value fails the whole render
// with a MissingVariableError; no partially substituted text is ever
// returned. Substitution is flat: values are not re-scanned for
// placeholders.
func Render(text string, context map[string]string) (string, error) {
	vars := ExtractVars(text)
	for _, name := range vars {
		if _, ok := context[name]; !ok {
			return "", errors.NewMissingVariableError(name)
		}
	}
	for _, name := range vars {
		text = strings.ReplaceAll(text, "{{ "+name+" }}", context[name])
	}
	return text, nil
}
