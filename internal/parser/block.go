package parser

import (
	"strings"

	"github.com/alnah/go-imd1/internal/ast"
)

// parseBlock classifies a raw block as a Heading or a Paragraph and
// parses its inline content.
func parseBlock(raw RawBlock) ast.Block {
	lines := make([]string, len(raw.Lines))
	for i, l := range raw.Lines {
		lines[i] = strings.TrimSpace(l)
	}

	if level, rest, ok := headingPrefix(lines[0]); ok {
		content := stripClosingHashes(rest)
		if len(lines) > 1 {
			content = strings.Join(append([]string{content}, lines[1:]...), "\n")
		}
		return &ast.Heading{
			Level:   level,
			Content: ParseInline(strings.TrimSpace(content)),
		}
	}

	return &ast.Paragraph{Content: ParseInline(strings.Join(lines, "\n"))}
}

// headingPrefix recognizes 1 to 6 '#' followed by whitespace or end of
// line, and returns the level and the text after the marker.
func headingPrefix(line string) (level int, rest string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < ast.MinHeadingLevel || n > ast.MaxHeadingLevel {
		return 0, "", false
	}
	if n == len(line) {
		return n, "", true
	}
	if line[n] != ' ' && line[n] != '\t' {
		return 0, "", false
	}
	return n, strings.TrimSpace(line[n:]), true
}

// stripClosingHashes removes an optional closing sequence of '#'
// characters when it is separated from the text by whitespace.
// An escaped trailing '#' is kept.
func stripClosingHashes(s string) string {
	trimmed := strings.TrimRight(s, "#")
	if trimmed == s {
		return s
	}
	if trimmed == "" {
		return ""
	}
	last := trimmed[len(trimmed)-1]
	if last != ' ' && last != '\t' {
		return s
	}
	return strings.TrimRight(trimmed, " \t")
}
