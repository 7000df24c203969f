package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	imd1 "github.com/alnah/go-imd1"
	"github.com/alnah/go-imd1/internal/config"
	"github.com/alnah/go-imd1/internal/fileutil"
	"github.com/alnah/go-imd1/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrReadCSS         = errors.New("failed to read CSS file")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
)

// logTimestampFormat is the timestamp layout of CLI log lines.
const logTimestampFormat = "2006-01-02 15:04:05"

// fileConverter converts one Markdown file to a string.
type fileConverter interface {
	ConvertFileToString(src string, format imd1.Format) (*imd1.Result, error)
}

// Compile-time interface implementation check.
var _ fileConverter = (*imd1.Converter)(nil)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	format      imd1.Format
	workers     int
	sidecar     bool
	metaVersion imd1.MetadataVersion
	skipHidden  bool
	now         func() time.Time
}

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if env.MaxProcs != nil {
		if undo, err := env.MaxProcs(maxprocs.Logger(logger.Debugf)); err == nil {
			defer undo()
		}
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	// Load configuration, then layer env and flags over it
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := resolveFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	metaVersion := resolveMetadataVersion(cfg.Metadata.Version)

	conv, err := newConverter(cfg, flags.assets.css, metaVersion, logger, env)
	if err != nil {
		return err
	}

	// Resolve input and output
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir, format.Extension())
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	params := &conversionParams{
		format:      format,
		workers:     imd1.ResolvePoolSize(cfg.Workers),
		sidecar:     cfg.Metadata.Sidecar,
		metaVersion: metaVersion,
		skipHidden:  cfg.Output.SkipHidden,
		now:         env.Now,
	}
	logger.WithFields(logrus.Fields{
		"files":   len(files),
		"workers": params.workers,
		"format":  format.String(),
		"layout":  cfg.Output.Layout,
	}).Debug("Starting conversion")

	results := convertBatch(ctx, conv, files, params)

	failed, firstErr := printResults(results, flags, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed: %w", failed, firstErr)
	}

	return nil
}

// newLogger builds the CLI logger on w. Verbose wins over quiet.
func newLogger(w io.Writer, quiet, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: logTimestampFormat,
	})

	switch {
	case verbose:
		logger.SetLevel(logrus.DebugLevel)
	case quiet:
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Output flags
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.layout != "" {
		cfg.Output.Layout = flags.layout
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}

	// Asset flags
	if flags.assets.style != "" {
		cfg.Style.Name = flags.assets.style
	}
	if flags.assets.template != "" {
		cfg.Templates.Name = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	// Metadata flags
	if flags.meta.version != 0 {
		cfg.Metadata.Version = flags.meta.version
	}
	if flags.meta.sidecar {
		cfg.Metadata.Sidecar = true
	}
	if flags.meta.skipHidden {
		cfg.Output.SkipHidden = true
	}
}

// resolveFormat parses the configured format. Empty selects HTML.
func resolveFormat(s string) (imd1.Format, error) {
	if s == "" {
		return imd1.FormatHTML, nil
	}
	return imd1.ParseFormat(s)
}

// resolveMetadataVersion maps the configured version, 0 meaning current.
func resolveMetadataVersion(v int) imd1.MetadataVersion {
	if v == 0 {
		return imd1.CurrentMetadataVersion
	}
	return imd1.MetadataVersion(v)
}

// newConverter builds a converter from the merged config. cssFile, when
// set, is read and appended after the configured CSS.
func newConverter(cfg *config.Config, cssFile string, metaVersion imd1.MetadataVersion, logger logrus.FieldLogger, env *Environment) (*imd1.Converter, error) {
	layout, err := imd1.ParseLayout(cfg.Output.Layout)
	if err != nil {
		return nil, err
	}

	css, err := resolveExtraCSS(cfg.Style.CSS, cssFile)
	if err != nil {
		return nil, err
	}

	opts := []imd1.Option{
		imd1.WithLayout(layout),
		imd1.WithStyle(cfg.Style.Name),
		imd1.WithCSS(css),
		imd1.WithAssetPath(cfg.Assets.BasePath),
		imd1.WithMetadataVersion(metaVersion),
		imd1.WithLogger(logger),
	}
	if cfg.Templates.Name != "" {
		opts = append(opts, imd1.WithTemplateSet(cfg.Templates.Name))
	}
	if env.AssetLoader != nil {
		opts = append(opts, imd1.WithAssetLoader(env.AssetLoader))
	}

	conv, err := imd1.NewConverter(opts...)
	if err != nil {
		if errors.Is(err, imd1.ErrTemplateNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(templateSetName(cfg)))
		}
		return nil, err
	}
	return conv, nil
}

func templateSetName(cfg *config.Config) string {
	if cfg.Templates.Name == "" {
		return imd1.DefaultTemplateSet
	}
	return cfg.Templates.Name
}

// resolveExtraCSS joins inline CSS from config with the content of
// cssFile.
func resolveExtraCSS(inline, cssFile string) (string, error) {
	if cssFile == "" {
		return inline, nil
	}
	content, err := fileutil.ReadText(cssFile)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	if inline == "" {
		return content, nil
	}
	return inline + "\n" + content, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
