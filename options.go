package imd1

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings collected from options.
type converterConfig struct {
	layout        Layout
	styleInput    string // style name, CSS file path, or inline CSS
	extraCSS      string
	assetPath     string
	templateSet   string
	metaVersion   MetadataVersion
	resolvedStyle string
}

func defaultConfig() converterConfig {
	return converterConfig{
		layout:      LayoutFragment,
		templateSet: DefaultTemplateSet,
		metaVersion: CurrentMetadataVersion,
	}
}

// WithLayout selects the output layout. The default is LayoutFragment.
func WithLayout(l Layout) Option {
	return func(c *Converter) {
		c.cfg.layout = l
	}
}

// WithStyle selects the CSS applied to HTML body and document layouts.
// style is a style name, a path to a CSS file, or inline CSS.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithCSS appends css after the selected style.
func WithCSS(css string) Option {
	return func(c *Converter) {
		c.cfg.extraCSS = css
	}
}

// WithAssetPath overrides built-in styles and templates with those found
// under dir, falling back to the built-in ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithTemplateSet selects the template set used by LayoutDocument.
func WithTemplateSet(name string) Option {
	return func(c *Converter) {
		c.cfg.templateSet = name
	}
}

// WithLogger sets the logger for debug timings and tree dumps. By default
// the converter logs nothing.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetadataVersion selects the wire layout used by Export. The default
// is CurrentMetadataVersion.
func WithMetadataVersion(v MetadataVersion) Option {
	return func(c *Converter) {
		c.cfg.metaVersion = v
	}
}

// discardLogger returns a logger that drops every entry.
func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// debugEnabled reports whether logger emits debug entries. Unknown
// logger types are assumed to.
func debugEnabled(logger logrus.FieldLogger) bool {
	switch l := logger.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return true
	}
}
