package license

import (
	"embed"
	"io/fs"
	"regexp"
	"sort"
)

//go:embed templates
var templateFS embed.FS

// DefaultLicense is generated when no license argument is given.
const DefaultLicense = "bsd3"

var templatePattern = regexp.MustCompile(`^template-([a-z0-9_]+)\.txt$`)

// licenses is the manifest of bundled license identifiers, built once
// from the embedded template bundle.
var licenses = scanBundle()

func scanBundle() []string {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		// The bundle is compiled in; failing to read it means a broken build.
		panic("license: embedded template bundle unreadable: " + err.Error())
	}

	var names []string
	for _, entry := range entries {
		match := templatePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		names = append(names, match[1])
	}
	sort.Strings(names)
	return names
}

// Licenses returns the identifiers of all bundled license templates in
// sorted order.
func Licenses() []string {
	out := make([]string, len(licenses))
	copy(out, licenses)
	return out
}

// IsLicense reports whether name identifies a bundled license.
func IsLicense(name string) bool {
	for _, l := range licenses {
		if l == name {
			return true
		}
	}
	return false
}

// HasHeader reports whether a bundled license ships a source file
// header variant.
func HasHeader(name string) bool {
	_, err := fs.Stat(templateFS, "templates/template-"+name+"-header.txt")
	return err == nil
}
