package ast

import (
	"fmt"
	"strings"
)

// Dump returns an indented, stable textual form of the document for
// debug logs and test failure messages.
func Dump(d *Document) string {
	if d == nil {
		return "Document <nil>\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Document (%d blocks)\n", len(d.Blocks))
	for _, b := range d.Blocks {
		switch v := b.(type) {
		case *Heading:
			fmt.Fprintf(&sb, "  Heading (level=%d)\n", v.Level)
			dumpInlines(&sb, v.Content, 2)
		case *Paragraph:
			sb.WriteString("  Paragraph\n")
			dumpInlines(&sb, v.Content, 2)
		case *Blank:
			sb.WriteString("  Blank\n")
		}
	}
	return sb.String()
}

func dumpInlines(sb *strings.Builder, nodes []Inline, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		switch v := n.(type) {
		case *Text:
			fmt.Fprintf(sb, "%sText %q\n", indent, v.Value)
		case *Strong:
			fmt.Fprintf(sb, "%sStrong\n", indent)
			dumpInlines(sb, v.Children, depth+1)
		case *Emphasis:
			fmt.Fprintf(sb, "%sEmphasis\n", indent)
			dumpInlines(sb, v.Children, depth+1)
		}
	}
}
