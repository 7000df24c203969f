// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the first user-level location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if filepath.IsAbs(p) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a CSS file path")
}

// ForTemplateNotFound returns hints for template set errors.
func ForTemplateNotFound(name string) string {
	return format("a template set needs templates/" + name + "/document.html and document.tex under --assets")
}

// ForInvalidUTF8 returns hints for sources that are not valid UTF-8.
func ForInvalidUTF8(path string) string {
	if path == "" {
		return format("input must be UTF-8 (UTF-16 is accepted with a byte order mark)")
	}
	return format("re-encode the file, e.g. iconv -t UTF-8 " + path)
}

// ForFormat returns the list of accepted output formats.
func ForFormat() string {
	return format("valid formats: html, latex")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
