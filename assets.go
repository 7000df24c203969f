package imd1

import "github.com/alnah/go-imd1/internal/assets"

// Names of the built-in style and template set.
const (
	DefaultStyle       = assets.DefaultStyleName
	DefaultTemplateSet = assets.DefaultTemplateSetName
)

// AssetLoader loads CSS styles and document template sets.
//
// NewAssetLoader returns a directory-backed loader that falls back to the
// built-in assets. Implement this interface for other backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the document templates stored under name.
	// Returns ErrTemplateNotFound if the set is missing or incomplete.
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// TemplateSet holds the templates used by LayoutDocument.
//
// HTML is an html/template and LaTeX a text/template. Both receive .Title
// (plain text for HTML, escaped for LaTeX) and .Content (rendered body).
type TemplateSet struct {
	Name  string // identifier (name or path)
	HTML  string // complete HTML page template
	LaTeX string // standalone LaTeX article template
}

// NewTemplateSet creates a TemplateSet from template sources.
func NewTemplateSet(name, html, latex string) *TemplateSet {
	return &TemplateSet{Name: name, HTML: html, LaTeX: latex}
}

// NewAssetLoader returns the built-in assets when basePath is empty.
// Otherwise files under basePath (styles/<name>.css and
// templates/<name>/document.{html,tex}) shadow the built-in ones.
// A basePath that is not a readable directory yields ErrInvalidAssetPath.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &resolverLoader{resolver: resolver}, nil
}

// resolverLoader exposes an internal resolver with public errors and types.
type resolverLoader struct {
	resolver *assets.AssetResolver
}

func (l *resolverLoader) LoadStyle(name string) (string, error) {
	css, err := l.resolver.LoadStyle(name)
	return css, convertAssetError(err)
}

func (l *resolverLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	ts, err := l.resolver.LoadTemplateSet(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return NewTemplateSet(ts.Name, ts.HTML, ts.LaTeX), nil
}
