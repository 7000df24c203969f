// Package pipeline holds the stages around the parse and render core:
//   - source preprocessing (byte order mark, line endings)
//   - document layouts (fragment, body wrapper, complete document)
//   - CSS injection into HTML documents
//
// Parsing and rendering live in the parser and render packages. Nothing
// here fails on document content; only template execution can error.
package pipeline
