package imd1

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-imd1/internal/assets"
	"github.com/alnah/go-imd1/internal/ast"
	"github.com/alnah/go-imd1/internal/fileutil"
	"github.com/alnah/go-imd1/internal/meta"
	"github.com/alnah/go-imd1/internal/parser"
	"github.com/alnah/go-imd1/internal/pipeline"
	"github.com/alnah/go-imd1/internal/render"
)

// documentParser turns preprocessed source into a tree and its metadata.
type documentParser interface {
	Parse(source string) (*ast.Document, meta.Metadata)
}

// Compile-time interface implementation checks.
var (
	_ pipeline.Preprocessor = pipeline.SourceNormalizer{}
	_ documentParser        = (*parser.Parser)(nil)
	_ render.Renderer       = render.HTML{}
	_ render.Renderer       = render.LaTeX{}
)

// Converter turns Markdown into HTML or LaTeX plus metadata.
//
// A Converter is immutable after NewConverter and safe for concurrent
// use. Each call allocates its own tree and output.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.Preprocessor
	parser            documentParser
	wrapper           *pipeline.DocumentWrapper
	logger            logrus.FieldLogger
}

// publicToInternalAdapter wraps a public AssetLoader as an internal one.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

func (a *publicToInternalAdapter) LoadTemplateSet(name string) (*assets.TemplateSet, error) {
	ts, err := a.pub.LoadTemplateSet(name)
	if err != nil {
		return nil, err
	}
	return &assets.TemplateSet{Name: ts.Name, HTML: ts.HTML, LaTeX: ts.LaTeX}, nil
}

// NewConverter creates a Converter. Options are applied in order.
// Returns an error for an invalid layout or metadata version, or when a
// style or template set cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          defaultConfig(),
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: pipeline.SourceNormalizer{},
		parser:       parser.New(),
		logger:       discardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if !c.cfg.layout.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, c.cfg.layout)
	}
	if !c.cfg.metaVersion.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrMetadataVersion, c.cfg.metaVersion)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}
	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	// Only complete documents need a template set; the other layouts
	// work with any loader.
	ts := &assets.TemplateSet{Name: c.cfg.templateSet}
	if c.cfg.layout == LayoutDocument {
		var err error
		ts, err = c.assetLoader.LoadTemplateSet(c.cfg.templateSet)
		if err != nil {
			return nil, fmt.Errorf("loading template set %q: %w", c.cfg.templateSet, convertAssetError(err))
		}
	}

	wrapper, err := pipeline.NewDocumentWrapper(ts, c.css())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	c.wrapper = wrapper

	return c, nil
}

// Convert renders source in format and extracts its metadata.
//
// It fails only with ErrUnknownFormat or ErrInvalidUTF8, or ErrTemplate
// when a custom document template cannot execute. Malformed markup never
// fails. Internal panics are recovered into an error.
func (c *Converter) Convert(source string, format Format) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()

	if !format.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if offset, ok := invalidUTF8Offset(source); ok {
		return nil, fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidUTF8, offset)
	}

	src := c.preprocessor.Preprocess(source)

	start := time.Now()
	doc, md := c.parser.Parse(src)
	c.logger.WithField("blocks", len(doc.Blocks)).Debugf("Parsing took %v", time.Since(start))
	if debugEnabled(c.logger) {
		c.logger.Debug(ast.Dump(doc))
	}

	start = time.Now()
	output, err := c.render(doc, format)
	if err != nil {
		return nil, err
	}
	c.logger.WithFields(logrus.Fields{
		"format": format.String(),
		"layout": c.cfg.layout.String(),
		"bytes":  len(output),
	}).Debugf("Rendering took %v", time.Since(start))

	return &Result{Format: format, Output: output, Metadata: md}, nil
}

// ToHTML converts source to HTML.
func (c *Converter) ToHTML(source string) (string, Metadata, error) {
	res, err := c.Convert(source, FormatHTML)
	if err != nil {
		return "", DefaultMetadata(), err
	}
	return res.Output, res.Metadata, nil
}

// ToLaTeX converts source to LaTeX.
func (c *Converter) ToLaTeX(source string) (string, Metadata, error) {
	res, err := c.Convert(source, FormatLaTeX)
	if err != nil {
		return "", DefaultMetadata(), err
	}
	return res.Output, res.Metadata, nil
}

// Export converts source and hands the caller two owned buffers: the
// rendered text and the metadata encoded with the configured wire
// version. A failed call allocates no buffers.
func (c *Converter) Export(source string, format Format) (*Export, error) {
	res, err := c.Convert(source, format)
	if err != nil {
		return nil, err
	}

	encoded, err := meta.Encode(res.Metadata, c.cfg.metaVersion)
	if err != nil {
		return nil, convertMetaError(err)
	}

	return &Export{
		Text: newBuffer(res.Output),
		Meta: newBuffer(string(encoded)),
	}, nil
}

// render walks doc with the renderer for format and applies the layout.
func (c *Converter) render(doc *ast.Document, format Format) (string, error) {
	var title string
	if h := doc.FirstHeading(); h != nil {
		title = ast.PlainText(h.Content)
	}

	var (
		out string
		err error
	)
	switch format {
	case FormatLaTeX:
		out, err = c.wrapper.LaTeX(c.cfg.layout, render.EscapeLaTeX(title), render.Render(doc, render.LaTeX{}))
	default:
		out, err = c.wrapper.HTML(c.cfg.layout, title, render.Render(doc, render.HTML{}))
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return out, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to
// CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsURL(input) {
		return fmt.Errorf("%w: remote styles are not supported: %q", ErrStyleNotFound, input)
	}

	if fileutil.IsFilePath(input) {
		content, err := fileutil.ReadText(input)
		if err != nil {
			return fmt.Errorf("%w: loading style file %q: %v", ErrStyleNotFound, input, err)
		}
		c.cfg.resolvedStyle = content
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// css joins the resolved style and extra CSS. Style comes first so extra
// rules can override it.
func (c *Converter) css() string {
	switch {
	case c.cfg.resolvedStyle == "":
		return c.cfg.extraCSS
	case c.cfg.extraCSS == "":
		return c.cfg.resolvedStyle
	default:
		return c.cfg.resolvedStyle + "\n" + c.cfg.extraCSS
	}
}

// invalidUTF8Offset returns the offset of the first byte that is not part
// of a valid UTF-8 sequence.
func invalidUTF8Offset(s string) (int, bool) {
	if utf8.ValidString(s) {
		return 0, false
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i, true
		}
		i += size
	}
	return 0, false
}

// Convert renders source in format with a default Converter.
func Convert(source string, format Format) (*Result, error) {
	c, err := NewConverter()
	if err != nil {
		return nil, err
	}
	return c.Convert(source, format)
}

// ToHTML converts source to an HTML fragment with default settings.
func ToHTML(source string) (string, Metadata, error) {
	c, err := NewConverter()
	if err != nil {
		return "", DefaultMetadata(), err
	}
	return c.ToHTML(source)
}

// ToLaTeX converts source to a LaTeX fragment with default settings.
func ToLaTeX(source string) (string, Metadata, error) {
	c, err := NewConverter()
	if err != nil {
		return "", DefaultMetadata(), err
	}
	return c.ToLaTeX(source)
}
