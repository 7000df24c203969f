package pipeline

import (
	"regexp"
	"strings"
)

// byteOrderMark is the UTF-8 encoding of U+FEFF.
const byteOrderMark = "\uFEFF"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocessor prepares raw source for parsing.
type Preprocessor interface {
	Preprocess(content string) string
}

// SourceNormalizer strips a leading byte order mark and converts "\r\n"
// and lone "\r" line endings to "\n".
type SourceNormalizer struct{}

// Preprocess applies all normalizations.
func (SourceNormalizer) Preprocess(content string) string {
	return normalizeLineEndings(strings.TrimPrefix(content, byteOrderMark))
}

func normalizeLineEndings(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	return crlfOrCR.ReplaceAllString(content, "\n")
}

var _ Preprocessor = SourceNormalizer{}
