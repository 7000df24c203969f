// Package parser turns preprocessed Markdown source into a document tree
// and its leading metadata.
//
// Parsing is total: every input yields a Document. Malformed markup
// degrades to literal text.
package parser

import (
	"github.com/alnah/go-imd1/internal/ast"
	"github.com/alnah/go-imd1/internal/meta"
)

// Parser parses Markdown source. The zero value is ready to use and is
// safe for concurrent use.
type Parser struct{}

// New returns a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse implements the root package's parser contract.
func (*Parser) Parse(source string) (*ast.Document, meta.Metadata) {
	return Parse(source)
}

// Parse extracts the leading metadata block, if any, and parses the
// remaining blocks. Source is expected to use "\n" line endings.
func Parse(source string) (*ast.Document, meta.Metadata) {
	md, body, fromFrontMatter := meta.FromFrontMatter(source)

	raw := Segment(body)
	if !fromFrontMatter && len(raw) > 0 {
		if m, ok := meta.FromBlock(raw[0].Lines); ok {
			md = m
			raw = raw[1:]
		}
	}

	doc := &ast.Document{Blocks: make([]ast.Block, 0, len(raw))}
	for _, rb := range raw {
		doc.Blocks = append(doc.Blocks, parseBlock(rb))
	}
	return doc, md
}
