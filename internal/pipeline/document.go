package pipeline

import (
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/alnah/go-imd1/internal/assets"
)

// Layout selects how rendered content is wrapped.
type Layout int

const (
	// LayoutFragment returns renderer output unchanged.
	LayoutFragment Layout = iota
	// LayoutBody wraps output in <body> or a LaTeX document environment.
	LayoutBody
	// LayoutDocument renders a complete HTML page or LaTeX article from
	// the template set.
	LayoutDocument
)

var layoutNames = [...]string{
	LayoutFragment: "fragment",
	LayoutBody:     "body",
	LayoutDocument: "document",
}

// Sentinel errors for document layouts.
var (
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrTemplateParse   = errors.New("document template parsing failed")
	ErrTemplateExecute = errors.New("document template rendering failed")
	ErrNilTemplateSet  = errors.New("nil template set")
)

func (l Layout) String() string {
	if l.Valid() {
		return layoutNames[l]
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Valid reports whether l is a known layout.
func (l Layout) Valid() bool {
	return l >= LayoutFragment && l <= LayoutDocument
}

// ParseLayout maps a layout name to a Layout. The empty string selects
// LayoutFragment.
func ParseLayout(s string) (Layout, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return LayoutFragment, nil
	}
	for i, n := range layoutNames {
		if n == name {
			return Layout(i), nil
		}
	}
	return LayoutFragment, fmt.Errorf("%w: %q (valid: fragment, body, document)", ErrInvalidLayout, s)
}

// htmlDocument is the data passed to the HTML document template.
type htmlDocument struct {
	Title   string
	Content htmltemplate.HTML
}

// latexDocument is the data passed to the LaTeX document template.
// Title is already escaped for LaTeX.
type latexDocument struct {
	Title   string
	Content string
}

// DocumentWrapper applies a layout to rendered content. Templates are
// parsed once; a DocumentWrapper is safe for concurrent use.
type DocumentWrapper struct {
	name  string
	html  *htmltemplate.Template
	latex *texttemplate.Template
	css   string
}

// NewDocumentWrapper parses the templates of ts. css is injected into
// HTML output for the body and document layouts.
func NewDocumentWrapper(ts *assets.TemplateSet, css string) (*DocumentWrapper, error) {
	if ts == nil {
		return nil, ErrNilTemplateSet
	}

	html, err := htmltemplate.New(assets.HTMLTemplateFile).Parse(ts.HTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplateParse, ts.Name, assets.HTMLTemplateFile, err)
	}
	latex, err := texttemplate.New(assets.LaTeXTemplateFile).Parse(ts.LaTeX)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplateParse, ts.Name, assets.LaTeXTemplateFile, err)
	}

	return &DocumentWrapper{name: ts.Name, html: html, latex: latex, css: css}, nil
}

// HTML wraps rendered HTML content. title is plain text; the template
// escapes it.
func (w *DocumentWrapper) HTML(layout Layout, title, content string) (string, error) {
	switch layout {
	case LayoutFragment:
		return content, nil
	case LayoutBody:
		return InjectCSS("<body>\n"+content+"\n</body>\n", w.css), nil
	case LayoutDocument:
		var sb strings.Builder
		data := htmlDocument{Title: title, Content: htmltemplate.HTML(content)} // #nosec G203 -- content is escaped by the HTML renderer
		if err := w.html.Execute(&sb, data); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrTemplateExecute, w.name, err)
		}
		return InjectCSS(sb.String(), w.css), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidLayout, layout)
	}
}

// LaTeX wraps rendered LaTeX content. title must already be escaped.
func (w *DocumentWrapper) LaTeX(layout Layout, title, content string) (string, error) {
	switch layout {
	case LayoutFragment:
		return content, nil
	case LayoutBody:
		return "\\begin{document}\n" + content + "\n\\end{document}\n", nil
	case LayoutDocument:
		var sb strings.Builder
		if err := w.latex.Execute(&sb, latexDocument{Title: title, Content: content}); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrTemplateExecute, w.name, err)
		}
		return sb.String(), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidLayout, layout)
	}
}
