package meta

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// frontMatterDelimiters are the opening lines that trigger front matter
// parsing: YAML and TOML.
var frontMatterDelimiters = []string{"---", "+++"}

// HasFrontMatter reports whether source opens with a front matter
// delimiter line.
func HasFrontMatter(source string) bool {
	return openingDelimiter(source) != ""
}

func openingDelimiter(source string) string {
	first, _, _ := strings.Cut(source, "\n")
	first = strings.TrimRight(first, " \t")
	for _, d := range frontMatterDelimiters {
		if first == d {
			return d
		}
	}
	return ""
}

// isClosed reports whether a line equal to delim follows the opening line.
func isClosed(source, delim string) bool {
	_, rest, _ := strings.Cut(source, "\n")
	for rest != "" {
		var line string
		line, rest, _ = strings.Cut(rest, "\n")
		if strings.TrimRight(line, " \t") == delim {
			return true
		}
	}
	return false
}

// FromFrontMatter extracts metadata from a leading YAML or TOML front
// matter block and returns the remaining body.
//
// It reports false, with source returned unchanged, when there is no
// front matter or when it cannot be decoded.
func FromFrontMatter(source string) (Metadata, string, bool) {
	delim := openingDelimiter(source)
	if delim == "" || !isClosed(source, delim) {
		return Default(), source, false
	}

	var fields map[string]any
	rest, err := frontmatter.Parse(strings.NewReader(source), &fields)
	if err != nil {
		return Default(), source, false
	}

	m := Default()
	for key, value := range fields {
		apply(&m, key, stringify(value))
	}
	return m, string(rest), true
}

// stringify renders a decoded scalar as text. A missing value decodes to
// nil and becomes an empty string.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
