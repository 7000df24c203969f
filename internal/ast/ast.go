// Package ast defines the document model shared by the parser and renderers.
//
// A Document is an ordered sequence of Blocks. Each Heading or Paragraph
// carries a sequence of Inline nodes. Both Block and Inline are closed
// variants: only the types declared here implement them.
//
// The tree is built once by the parser and treated as immutable afterwards.
package ast

// MinHeadingLevel and MaxHeadingLevel bound Heading.Level.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// Document is the parsed body of a source, without its metadata block.
type Document struct {
	Blocks []Block
}

// Block is a structural unit of a document.
type Block interface {
	block()
}

// Heading is an ATX heading of Level 1 to 6.
type Heading struct {
	Level   int
	Content []Inline
}

// Paragraph is any non-blank block that is not a heading.
type Paragraph struct {
	Content []Inline
}

// Blank is a separator. The parser never emits it in a Document;
// it exists so renderers can handle every block kind.
type Blank struct{}

func (*Heading) block()   {}
func (*Paragraph) block() {}
func (*Blank) block()     {}

// Inline is a span-level node.
type Inline interface {
	inline()
}

// Text is literal text, stored unescaped.
type Text struct {
	Value string
}

// Strong is strong emphasis (**...**). Never empty.
type Strong struct {
	Children []Inline
}

// Emphasis is emphasis (*...*). Never empty.
type Emphasis struct {
	Children []Inline
}

func (*Text) inline()     {}
func (*Strong) inline()   {}
func (*Emphasis) inline() {}
