package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alnah/go-imd1/internal/ast"
)

type frameKind int

const (
	frameRoot frameKind = iota
	frameStrong
	frameEmphasis
)

func (k frameKind) delimiter() string {
	switch k {
	case frameStrong:
		return "**"
	case frameEmphasis:
		return "*"
	default:
		return ""
	}
}

// frame is an open delimiter run and the inline content collected since.
type frame struct {
	kind     frameKind
	children []ast.Inline
}

// inlineParser holds the delimiter stack for one block of text.
// The stack never holds more than one frame of each kind.
type inlineParser struct {
	stack   []*frame
	pending strings.Builder
}

// ParseInline resolves strong and emphasis spans in s.
//
// Unmatched delimiters are kept as literal text. The result is coalesced:
// no empty containers and no adjacent Text nodes.
func ParseInline(s string) []ast.Inline {
	p := &inlineParser{stack: []*frame{{kind: frameRoot}}}

	for i := 0; i < len(s); {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && (s[i+1] == '*' || s[i+1] == '\\') {
				p.pending.WriteByte(s[i+1])
				i += 2
				continue
			}
			p.pending.WriteByte('\\')
			i++
		case '*':
			j := i
			for j < len(s) && s[j] == '*' {
				j++
			}
			p.delimiterRun(j-i, canClose(s, i), canOpen(s, j))
			i = j
		default:
			p.pending.WriteByte(s[i])
			i++
		}
	}

	p.flush()
	for len(p.stack) > 1 {
		p.unwind()
	}
	return ast.Coalesce(p.stack[0].children)
}

// canClose reports whether a run starting at i follows a non-space rune.
func canClose(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsSpace(r)
}

// canOpen reports whether a run ending before j precedes a non-space rune.
func canOpen(s string, j int) bool {
	if j >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[j:])
	return !unicode.IsSpace(r)
}

// delimiterRun consumes a run of n asterisks. Closing is tried before
// opening; once the run has opened a frame it no longer closes any.
// Stars the run cannot use become literal text.
func (p *inlineParser) delimiterRun(n int, closable, openable bool) {
	p.flush()
	opened := false

	for n > 0 {
		if closable && !opened {
			if kind, ok := p.closeCandidate(n); ok {
				p.close(kind)
				n -= len(kind.delimiter())
				continue
			}
		}
		if openable {
			if n >= 2 && !p.isOpen(frameStrong) {
				p.open(frameStrong)
				n -= 2
				opened = true
				continue
			}
			if !p.isOpen(frameEmphasis) {
				p.open(frameEmphasis)
				n--
				opened = true
				continue
			}
		}
		break
	}

	if n > 0 {
		p.top().children = append(p.top().children, &ast.Text{Value: strings.Repeat("*", n)})
	}
}

// closeCandidate picks the frame a run of n stars closes. The top frame
// wins when the run is long enough for it; otherwise the nearest deeper
// frame of a kind the run can close.
func (p *inlineParser) closeCandidate(n int) (frameKind, bool) {
	top := p.top().kind
	switch {
	case top == frameEmphasis:
		return frameEmphasis, true
	case top == frameStrong && n >= 2:
		return frameStrong, true
	case top == frameStrong && p.isOpen(frameEmphasis):
		return frameEmphasis, true
	}
	return frameRoot, false
}

func (p *inlineParser) top() *frame {
	return p.stack[len(p.stack)-1]
}

func (p *inlineParser) isOpen(kind frameKind) bool {
	for _, f := range p.stack[1:] {
		if f.kind == kind {
			return true
		}
	}
	return false
}

func (p *inlineParser) open(kind frameKind) {
	p.stack = append(p.stack, &frame{kind: kind})
}

// close pops frames down to the nearest one of kind. Frames above it are
// unwound into literal text; the frame itself becomes a span, or literal
// delimiters when it holds no content.
func (p *inlineParser) close(kind frameKind) {
	for p.top().kind != kind {
		p.unwind()
	}

	f := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	parent := p.top()

	children := ast.Coalesce(f.children)
	if len(children) == 0 {
		d := kind.delimiter()
		parent.children = append(parent.children, &ast.Text{Value: d + d})
		return
	}

	switch kind {
	case frameStrong:
		parent.children = append(parent.children, &ast.Strong{Children: children})
	case frameEmphasis:
		parent.children = append(parent.children, &ast.Emphasis{Children: children})
	}
}

// unwind pops the top frame and hands its delimiter and content back to
// the parent as plain inline content.
func (p *inlineParser) unwind() {
	f := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	parent := p.top()
	parent.children = append(parent.children, &ast.Text{Value: f.kind.delimiter()})
	parent.children = append(parent.children, f.children...)
}

func (p *inlineParser) flush() {
	if p.pending.Len() == 0 {
		return
	}
	p.top().children = append(p.top().children, &ast.Text{Value: p.pending.String()})
	p.pending.Reset()
}
