package render

import "strings"

// LaTeX renders block and inline markup as LaTeX body text.
type LaTeX struct{}

var _ Renderer = LaTeX{}

// latexSections maps heading levels to sectioning commands. Levels past
// the table use the last entry.
var latexSections = [...]string{
	1: `\section`,
	2: `\subsection`,
	3: `\subsubsection`,
	4: `\paragraph`,
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`_`, `\_`,
	`%`, `\%`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// SectionCommand returns the sectioning command for a heading level.
func SectionCommand(level int) string {
	if level < 1 {
		level = 1
	}
	if level >= len(latexSections) {
		level = len(latexSections) - 1
	}
	return latexSections[level]
}

func (LaTeX) Heading(level int, content string) string {
	return SectionCommand(level) + "{" + content + "}\n"
}

func (LaTeX) Paragraph(content string) string { return content + "\n\n" }

func (LaTeX) Blank() string { return "" }

func (LaTeX) Text(value string) string { return EscapeLaTeX(value) }

func (LaTeX) Strong(content string) string { return `\textbf{` + content + "}" }

func (LaTeX) Emphasis(content string) string { return `\textit{` + content + "}" }

func (LaTeX) Separator() string { return "" }

// Finish drops the trailing paragraph break so a lone paragraph renders
// as its bare text.
func (LaTeX) Finish(out string) string { return strings.TrimRight(out, "\n") }

// EscapeLaTeX makes s safe to place in LaTeX body text.
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}
