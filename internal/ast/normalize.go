package ast

import "strings"

// Coalesce merges adjacent Text siblings, drops empty Text nodes, and
// recurses into Strong and Emphasis. Containers left without children are
// removed. The input slice is not modified.
func Coalesce(nodes []Inline) []Inline {
	out := make([]Inline, 0, len(nodes))
	var pending strings.Builder
	havePending := false

	flush := func() {
		if havePending && pending.Len() > 0 {
			out = append(out, &Text{Value: pending.String()})
		}
		pending.Reset()
		havePending = false
	}

	for _, n := range nodes {
		switch v := n.(type) {
		case *Text:
			pending.WriteString(v.Value)
			havePending = true
		case *Strong:
			children := Coalesce(v.Children)
			if len(children) == 0 {
				continue
			}
			flush()
			out = append(out, &Strong{Children: children})
		case *Emphasis:
			children := Coalesce(v.Children)
			if len(children) == 0 {
				continue
			}
			flush()
			out = append(out, &Emphasis{Children: children})
		}
	}
	flush()

	return out
}

// PlainText flattens inline content to its literal text, dropping markup.
func PlainText(nodes []Inline) string {
	var sb strings.Builder
	writePlain(&sb, nodes)
	return sb.String()
}

func writePlain(sb *strings.Builder, nodes []Inline) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Text:
			sb.WriteString(v.Value)
		case *Strong:
			writePlain(sb, v.Children)
		case *Emphasis:
			writePlain(sb, v.Children)
		}
	}
}

// FirstHeading returns the first heading of the document, or nil.
func (d *Document) FirstHeading() *Heading {
	if d == nil {
		return nil
	}
	for _, b := range d.Blocks {
		if h, ok := b.(*Heading); ok {
			return h
		}
	}
	return nil
}
