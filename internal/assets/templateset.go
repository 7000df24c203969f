package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// TemplateSet holds the document templates of one layout theme.
type TemplateSet struct {
	Name  string // identifier (name or directory)
	HTML  string // html/template source for a complete HTML page
	LaTeX string // text/template source for a standalone LaTeX article
}

// Template file names inside a template set directory.
const (
	HTMLTemplateFile  = "document.html"
	LaTeXTemplateFile = "document.tex"
)

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"

// templateFiles lists the files every template set must provide.
var templateFiles = []string{HTMLTemplateFile, LaTeXTemplateFile}

// readTemplateSet assembles a set from read, which returns the content of
// one file of the set directory. A set missing every file is not found; a
// set missing some is incomplete.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	contents := make(map[string]string, len(templateFiles))
	var missing []string
	for _, file := range templateFiles {
		b, err := read(file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, file)
		case errors.Is(err, ErrPathTraversal):
			return nil, err
		case err != nil:
			return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, file, err)
		default:
			contents[file] = string(b)
		}
	}

	switch len(missing) {
	case 0:
		return &TemplateSet{Name: name, HTML: contents[HTMLTemplateFile], LaTeX: contents[LaTeXTemplateFile]}, nil
	case len(templateFiles):
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	default:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, strings.Join(missing, ", "))
	}
}
