package main

import (
	"errors"
	"os"

	imd1 "github.com/alnah/go-imd1"
	"github.com/alnah/go-imd1/internal/assets"
	"github.com/alnah/go-imd1/internal/config"
	"github.com/alnah/go-imd1/internal/hints"
)

// Exit codes for the imd1 CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful conversion
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitEncoding = 4 // Source is not valid UTF-8
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Encoding errors (exit 4)
	if errors.Is(err, imd1.ErrInvalidUTF8) {
		return ExitEncoding
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, imd1.ErrReadMarkdown) ||
		errors.Is(err, imd1.ErrWriteOutput) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, imd1.ErrUnknownFormat) ||
		errors.Is(err, imd1.ErrInvalidLayout) ||
		errors.Is(err, imd1.ErrMetadataVersion) ||
		errors.Is(err, imd1.ErrStyleNotFound) ||
		errors.Is(err, imd1.ErrTemplateNotFound) ||
		errors.Is(err, imd1.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "" when none applies.
// Config and template lookup failures carry their hint already.
func hintFor(err error) string {
	switch {
	case errors.Is(err, imd1.ErrInvalidUTF8):
		return hints.ForInvalidUTF8("")
	case errors.Is(err, imd1.ErrUnknownFormat):
		return hints.ForFormat()
	case errors.Is(err, imd1.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().Styles())
	case errors.Is(err, imd1.ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
