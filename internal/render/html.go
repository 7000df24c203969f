package render

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/util"
)

// HTML renders block and inline markup as HTML fragments.
type HTML struct{}

var _ Renderer = HTML{}

func (HTML) Heading(level int, content string) string {
	tag := "h" + strconv.Itoa(level)
	return "<" + tag + ">" + content + "</" + tag + ">"
}

func (HTML) Paragraph(content string) string { return "<p>" + content + "</p>" }

func (HTML) Blank() string { return "" }

func (HTML) Text(value string) string { return EscapeHTML(value) }

func (HTML) Strong(content string) string { return "<strong>" + content + "</strong>" }

func (HTML) Emphasis(content string) string { return "<em>" + content + "</em>" }

func (HTML) Separator() string { return "\n" }

func (HTML) Finish(out string) string { return out }

// EscapeHTML replaces '&', '<' and '>' with their entities. Quotes are
// left alone: text never lands inside an attribute.
func EscapeHTML(s string) string {
	var sb strings.Builder
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '&' && c != '<' && c != '>' {
			continue
		}
		if start == 0 && sb.Len() == 0 {
			sb.Grow(len(s) + 8)
		}
		sb.WriteString(s[start:i])
		sb.Write(util.EscapeHTMLByte(c))
		start = i + 1
	}
	if start == 0 {
		return s
	}
	sb.WriteString(s[start:])
	return sb.String()
}
