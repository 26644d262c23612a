// Package license implements the template engine behind lice: the
// comment style and language tables, template loading and decoration,
// and placeholder substitution.
package license

import (
	"fmt"
	"sort"

	"github.com/wellmaintained/lice/internal/errors"
)

// CommentStyle describes how to wrap text so it parses as a comment in
// a target language. All three markers empty means plain text.
type CommentStyle struct {
	// Open is emitted once before the first line (e.g. "/*").
	Open string
	// Line is prepended to every line (e.g. " *").
	Line string
	// Close is emitted once after the last line (e.g. " */").
	Close string
}

// styles maps a comment style name to its markers. To support a new
// comment syntax, add an entry here and reference it from langs.
var styles = map[string]CommentStyle{
	"text":      {},
	"c":         {Open: "/*", Line: " *", Close: " */"},
	"unix":      {Line: "#"},
	"lua":       {Open: "--[[", Close: "--]]"},
	"java":      {Open: "/**", Line: " *", Close: " */"},
	"perl":      {Open: "=item", Close: "=cut"},
	"ruby":      {Open: "=begin", Close: "=end"},
	"fortran":   {Open: "C", Line: "C", Close: "C"},
	"fortran90": {Open: "!*", Line: "!*", Close: "!*"},
	"erlang":    {Open: "%%", Line: "%", Close: "%%"},
	"html":      {Open: "<!--", Close: "-->"},
}

// langs maps a language tag (source file extension) to a comment style
// name. Supporting a new language is one entry here, nothing else.
var langs = map[string]string{
	"txt":  "text",
	"c":    "c",
	"cc":   "c",
	"cpp":  "c",
	"css":  "c",
	"go":   "c",
	"h":    "c",
	"hpp":  "c",
	"js":   "c",
	"m":    "c",
	"py":   "unix",
	"sh":   "unix",
	"pl":   "perl",
	"lua":  "lua",
	"rb":   "ruby",
	"java": "java",
	"f":    "fortran",
	"f90":  "fortran90",
	"erl":  "erlang",
	"html": "html",
}

// DefaultLanguage is the language tag used when none is requested.
const DefaultLanguage = "txt"

// ResolveStyle returns the comment style for a language tag. An
// unknown tag, or a tag pointing at a style that does not exist, is a
// table bug rather than a user mistake and is reported as a
// configuration error.
func ResolveStyle(lang string) (CommentStyle, error) {
	name, ok := langs[lang]
	if !ok {
		return CommentStyle{}, errors.NewConfigurationError(
			fmt.Sprintf("unknown language %q (see 'lice languages')", lang), nil)
	}
	style, ok := styles[name]
	if !ok {
		return CommentStyle{}, errors.NewConfigurationError(
			fmt.Sprintf("language %q maps to undefined comment style %q", lang, name), nil)
	}
	return style, nil
}

// StyleName returns the comment style name a language tag maps to.
func StyleName(lang string) (string, error) {
	name, ok := langs[lang]
	if !ok {
		return "", errors.NewConfigurationError(
			fmt.Sprintf("unknown language %q (see 'lice languages')", lang), nil)
	}
	return name, nil
}

// Languages returns every supported language tag in sorted order.
func Languages() []string {
	tags := make([]string, 0, len(langs))
	for tag := range langs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
