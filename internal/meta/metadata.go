// Package meta holds document metadata: the record itself, its extraction
// from a leading metadata block or front matter, and its binary encoding.
package meta

import (
	"fmt"
	"strings"
)

// Known metadata keys. Matching is case-insensitive.
const (
	KeyHidden    = "hidden"
	KeyAuthor    = "author"
	KeyCopyright = "copyright"
)

// Metadata is the document-level information delivered next to the
// rendered output. A nil Author or Copyright means "not specified",
// which is distinct from a present empty string.
type Metadata struct {
	Hidden    bool
	Author    *string
	Copyright *string
}

// Default returns the metadata of a document without a metadata block.
func Default() Metadata {
	return Metadata{}
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// AuthorOr returns the author, or fallback when absent.
func (m Metadata) AuthorOr(fallback string) string {
	if m.Author == nil {
		return fallback
	}
	return *m.Author
}

// CopyrightOr returns the copyright, or fallback when absent.
func (m Metadata) CopyrightOr(fallback string) string {
	if m.Copyright == nil {
		return fallback
	}
	return *m.Copyright
}

// Equal reports whether both records carry the same values, comparing
// presence as well as content.
func (m Metadata) Equal(o Metadata) bool {
	return m.Hidden == o.Hidden &&
		equalOptional(m.Author, o.Author) &&
		equalOptional(m.Copyright, o.Copyright)
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (m Metadata) String() string {
	return fmt.Sprintf(
		"Metadata:\n| Hidden: %v\n| Author: %s\n| Copyright: %s",
		m.Hidden,
		formatOptional(m.Author),
		formatOptional(m.Copyright),
	)
}

func formatOptional(s *string) string {
	if s == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%q", *s)
}

// parseHidden implements the recovery rule for the hidden flag: only a
// case-insensitive "true" enables it.
func parseHidden(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}
