// Package imd1 converts a small Markdown dialect to HTML and LaTeX and
// extracts document metadata that appears in neither output.
//
// # Quick Start
//
// Create a converter once and reuse it:
//
//	conv, err := imd1.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	html, md, err := conv.ToHTML("author: Jane\n\n# Hello\n\nSome **bold** text")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(html)        // <h1>Hello</h1>\n<p>Some <strong>bold</strong> text</p>
//	fmt.Println(*md.Author)  // Jane
//
// # Dialect
//
// Blocks are separated by blank lines. A block starting with one to six
// '#' characters followed by whitespace is a heading; every other block
// is a paragraph. Inside a block, **text** is strong emphasis and *text*
// is emphasis. Unmatched delimiters are kept as literal text and \* is a
// literal asterisk. Nothing in the source can make a conversion fail
// except invalid UTF-8.
//
// # Metadata
//
// A leading block of "key: value" lines carrying at least one of the keys
// hidden, author or copyright is metadata. It is removed from the
// rendered body:
//
//	hidden: true
//	author: Jane Doe
//	copyright: 2024 Example Corp
//
// A YAML front matter block delimited by "---" lines is accepted too.
// Unknown keys are ignored and a hidden value other than true/false
// (any case) reads as false.
//
// # Layouts
//
// By default the output is a fragment: the bare rendered blocks. Use
// WithLayout to wrap it:
//
//	conv, err := imd1.NewConverter(
//	    imd1.WithLayout(imd1.LayoutDocument),
//	    imd1.WithStyle("technical"),
//	)
//
// LayoutBody wraps HTML in <body> and LaTeX in a document environment.
// LayoutDocument renders a complete HTML page or LaTeX article from a
// template set. Styles apply to HTML only.
//
// # Ownership
//
// Export returns the rendered text and the encoded metadata as two
// Buffers. Each is released exactly once with Release, independently of
// the other:
//
//	exp, err := conv.Export(source, imd1.FormatLaTeX)
//	if err != nil {
//	    return err
//	}
//	defer exp.Release()
//
//	md, version, err := imd1.DecodeMetadata(exp.Meta.Bytes())
//
// # Metadata Wire Format
//
// Encoded metadata starts with a version byte. MetadataV2, the default,
// carries the hidden flag; MetadataV1 omits it. DecodeMetadata reads
// both.
//
// # Concurrency
//
// A Converter holds no per-call state and is safe for concurrent use.
// Use ResolvePoolSize to size a worker group for batch conversion.
//
// # Custom Assets
//
// Use WithAssetPath to load styles and template sets from a directory,
// falling back to the built-in ones:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom/
//	        ├── document.html
//	        └── document.tex
//
// # Errors
//
// Conversion fails only with ErrUnknownFormat or ErrInvalidUTF8, plus
// ErrTemplate when a custom document template cannot execute. File
// variants add ErrReadMarkdown and ErrWriteOutput.
package imd1
