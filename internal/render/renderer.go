// Package render turns a document tree into target markup.
//
// Each output format implements Renderer; Render is the single tree walk
// shared by all of them, so block order and nesting never differ between
// formats. Renderers are stateless values and safe for concurrent use.
package render

import (
	"strings"

	"github.com/alnah/go-imd1/internal/ast"
)

// Renderer emits markup for one node kind at a time. Container methods
// receive the already rendered markup of their children.
type Renderer interface {
	Heading(level int, content string) string
	Paragraph(content string) string
	Blank() string
	Text(value string) string
	Strong(content string) string
	Emphasis(content string) string

	// Separator is written between two consecutive blocks.
	Separator() string
	// Finish post-processes the complete output.
	Finish(out string) string
}

// Render walks doc in source order and returns the markup produced by r.
// A nil document renders as the empty string.
func Render(doc *ast.Document, r Renderer) string {
	if doc == nil {
		return r.Finish("")
	}

	var sb strings.Builder
	for i, b := range doc.Blocks {
		if i > 0 {
			sb.WriteString(r.Separator())
		}
		sb.WriteString(renderBlock(b, r))
	}
	return r.Finish(sb.String())
}

// Inlines renders inline content with r. Layout code uses it for titles.
func Inlines(nodes []ast.Inline, r Renderer) string {
	var sb strings.Builder
	writeInlines(&sb, nodes, r)
	return sb.String()
}

func renderBlock(b ast.Block, r Renderer) string {
	switch v := b.(type) {
	case *ast.Heading:
		return r.Heading(clampLevel(v.Level), Inlines(v.Content, r))
	case *ast.Paragraph:
		return r.Paragraph(Inlines(v.Content, r))
	case *ast.Blank:
		return r.Blank()
	default:
		return ""
	}
}

func writeInlines(sb *strings.Builder, nodes []ast.Inline, r Renderer) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *ast.Text:
			sb.WriteString(r.Text(v.Value))
		case *ast.Strong:
			sb.WriteString(r.Strong(Inlines(v.Children, r)))
		case *ast.Emphasis:
			sb.WriteString(r.Emphasis(Inlines(v.Children, r)))
		}
	}
}

func clampLevel(level int) int {
	return min(max(level, ast.MinHeadingLevel), ast.MaxHeadingLevel)
}
