package render

import (
	"testing"

	"github.com/alnah/go-imd1/internal/ast"
)

func para(nodes ...ast.Inline) *ast.Paragraph { return &ast.Paragraph{Content: nodes} }

func heading(level int, nodes ...ast.Inline) *ast.Heading {
	return &ast.Heading{Level: level, Content: nodes}
}

func txt(s string) *ast.Text { return &ast.Text{Value: s} }

func doc(blocks ...ast.Block) *ast.Document { return &ast.Document{Blocks: blocks} }

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       *ast.Document
		wantHTML  string
		wantLaTeX string
	}{
		{
			name:      "nil document",
			doc:       nil,
			wantHTML:  "",
			wantLaTeX: "",
		},
		{
			name:      "empty document",
			doc:       doc(),
			wantHTML:  "",
			wantLaTeX: "",
		},
		{
			name:      "strong in paragraph",
			doc:       doc(para(txt("Hello "), &ast.Strong{Children: []ast.Inline{txt("world")}})),
			wantHTML:  "<p>Hello <strong>world</strong></p>",
			wantLaTeX: `Hello \textbf{world}`,
		},
		{
			name:      "emphasis",
			doc:       doc(para(&ast.Emphasis{Children: []ast.Inline{txt("soft")}})),
			wantHTML:  "<p><em>soft</em></p>",
			wantLaTeX: `\textit{soft}`,
		},
		{
			name:      "nested spans",
			doc:       doc(para(&ast.Strong{Children: []ast.Inline{&ast.Emphasis{Children: []ast.Inline{txt("x")}}}})),
			wantHTML:  "<p><strong><em>x</em></strong></p>",
			wantLaTeX: `\textbf{\textit{x}}`,
		},
		{
			name:      "level one heading",
			doc:       doc(heading(1, txt("Title"))),
			wantHTML:  "<h1>Title</h1>",
			wantLaTeX: `\section{Title}`,
		},
		{
			name:      "level six heading degrades in latex",
			doc:       doc(heading(6, txt("Deep"))),
			wantHTML:  "<h6>Deep</h6>",
			wantLaTeX: `\paragraph{Deep}`,
		},
		{
			name:      "literal asterisk",
			doc:       doc(para(txt("*oops"))),
			wantHTML:  "<p>*oops</p>",
			wantLaTeX: "*oops",
		},
		{
			name:      "blocks in order",
			doc:       doc(heading(2, txt("Intro")), para(txt("one")), para(txt("two"))),
			wantHTML:  "<h2>Intro</h2>\n<p>one</p>\n<p>two</p>",
			wantLaTeX: "\\subsection{Intro}\none\n\ntwo",
		},
		{
			name:      "html entities escaped",
			doc:       doc(para(txt(`a < b && c > "d"`))),
			wantHTML:  `<p>a &lt; b &amp;&amp; c &gt; "d"</p>`,
			wantLaTeX: `a < b \&\& c > "d"`,
		},
		{
			name:      "markup in text is not interpreted",
			doc:       doc(para(txt("<script>"))),
			wantHTML:  "<p>&lt;script&gt;</p>",
			wantLaTeX: "<script>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Render(tt.doc, HTML{}); got != tt.wantHTML {
				t.Errorf("Render(HTML) = %q, want %q", got, tt.wantHTML)
			}
			if got := Render(tt.doc, LaTeX{}); got != tt.wantLaTeX {
				t.Errorf("Render(LaTeX) = %q, want %q", got, tt.wantLaTeX)
			}
		})
	}
}

func TestEscapeLaTeX(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		`plain`:      `plain`,
		`\`:          `\textbackslash{}`,
		`{}`:         `\{\}`,
		`$5 & 10%`:   `\$5 \& 10\%`,
		`#tag_name`:  `\#tag\_name`,
		`~`:          `\textasciitilde{}`,
		`^`:          `\textasciicircum{}`,
		`a\{b}`:      `a\textbackslash{}\{b\}`,
		`© Vintilă`: `© Vintilă`,
	}
	for in, want := range tests {
		if got := EscapeLaTeX(in); got != want {
			t.Errorf("EscapeLaTeX(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":          "",
		"plain":     "plain",
		"&":         "&amp;",
		"<a>":       "&lt;a&gt;",
		"x & y":     "x &amp; y",
		`'quoted"`:  `'quoted"`,
		"tail &":    "tail &amp;",
		"&lead":     "&amp;lead",
	}
	for in, want := range tests {
		if got := EscapeHTML(in); got != want {
			t.Errorf("EscapeHTML(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSectionCommand(t *testing.T) {
	t.Parallel()

	want := map[int]string{
		0: `\section`,
		1: `\section`,
		2: `\subsection`,
		3: `\subsubsection`,
		4: `\paragraph`,
		5: `\paragraph`,
		6: `\paragraph`,
		9: `\paragraph`,
	}
	for level, cmd := range want {
		if got := SectionCommand(level); got != cmd {
			t.Errorf("SectionCommand(%d) = %q, want %q", level, got, cmd)
		}
	}
}

func TestInlines(t *testing.T) {
	t.Parallel()

	nodes := []ast.Inline{txt("A & "), &ast.Strong{Children: []ast.Inline{txt("B")}}}
	if got, want := Inlines(nodes, HTML{}), "A &amp; <strong>B</strong>"; got != want {
		t.Errorf("Inlines(HTML) = %q, want %q", got, want)
	}
	if got, want := Inlines(nodes, LaTeX{}), `A \& \textbf{B}`; got != want {
		t.Errorf("Inlines(LaTeX) = %q, want %q", got, want)
	}
}
