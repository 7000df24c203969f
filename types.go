package imd1

import (
	"fmt"
	"strings"

	"github.com/alnah/go-imd1/internal/pipeline"
)

// Format is a rendering target.
type Format int

// Supported output formats.
const (
	FormatHTML Format = iota
	FormatLaTeX
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatLaTeX:
		return "latex"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return f == FormatHTML || f == FormatLaTeX
}

// Extension returns the file extension for f, with its leading dot.
func (f Format) Extension() string {
	if f == FormatLaTeX {
		return ".tex"
	}
	return ".html"
}

// ParseFormat maps "html", "latex" or "tex" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "htm":
		return FormatHTML, nil
	case "latex", "tex":
		return FormatLaTeX, nil
	default:
		return FormatHTML, fmt.Errorf("%w: %q (valid: html, latex)", ErrUnknownFormat, s)
	}
}

// Layout selects how rendered content is wrapped.
type Layout = pipeline.Layout

// Supported layouts.
const (
	// LayoutFragment is the bare renderer output. It is the default.
	LayoutFragment = pipeline.LayoutFragment
	// LayoutBody wraps output in <body> or a LaTeX document environment.
	LayoutBody = pipeline.LayoutBody
	// LayoutDocument produces a complete HTML page or LaTeX article.
	LayoutDocument = pipeline.LayoutDocument
)

// ParseLayout maps "fragment", "body" or "document" to a Layout. The empty
// string selects LayoutFragment.
func ParseLayout(s string) (Layout, error) {
	l, err := pipeline.ParseLayout(s)
	if err != nil {
		return l, fmt.Errorf("%w: %q", ErrInvalidLayout, s)
	}
	return l, nil
}

// Result is the outcome of one conversion. The caller owns it.
type Result struct {
	Format   Format
	Output   string
	Metadata Metadata
}
