package meta

import (
	"regexp"
	"strings"
)

// keyValueLine matches a "key: value" line. The key is restricted to a
// conservative identifier so prose containing a colon is not mistaken
// for metadata.
var keyValueLine = regexp.MustCompile(`^\s*([A-Za-z0-9_-]+)\s*:(.*)$`)

// FromBlock decodes a block of "key: value" lines. It reports false when
// any line is not a key/value pair or when no known key is present; the
// block is then ordinary body content.
//
// Unknown keys are ignored. Later duplicates win. Values are trimmed.
func FromBlock(lines []string) (Metadata, bool) {
	if len(lines) == 0 {
		return Default(), false
	}

	m := Default()
	known := false

	for _, line := range lines {
		match := keyValueLine.FindStringSubmatch(line)
		if match == nil {
			return Default(), false
		}

		value := strings.TrimSpace(match[2])
		if apply(&m, match[1], value) {
			known = true
		}
	}

	if !known {
		return Default(), false
	}
	return m, true
}

// apply stores value under key and reports whether the key is known.
func apply(m *Metadata, key, value string) bool {
	switch strings.ToLower(key) {
	case KeyHidden:
		m.Hidden = parseHidden(value)
	case KeyAuthor:
		m.Author = StringPtr(value)
	case KeyCopyright:
		m.Copyright = StringPtr(value)
	default:
		return false
	}
	return true
}
