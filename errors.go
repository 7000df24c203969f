package imd1

import (
	"errors"
	"fmt"

	"github.com/alnah/go-imd1/internal/assets"
	"github.com/alnah/go-imd1/internal/meta"
)

// Sentinel errors for library operations.
var (
	// ErrInvalidUTF8 is the only content error: the source is not valid
	// UTF-8. Every other irregularity degrades to literal text.
	ErrInvalidUTF8   = errors.New("source is not valid UTF-8")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidLayout = errors.New("invalid layout")

	// Ownership errors.
	ErrBufferReleased = errors.New("buffer already released")

	// File variant errors.
	ErrReadMarkdown = errors.New("failed to read markdown")
	ErrWriteOutput  = errors.New("failed to write output")

	// Metadata wire errors.
	ErrMetadataTruncated = errors.New("metadata buffer malformed")
	ErrMetadataVersion   = errors.New("unsupported metadata version")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTemplate         = errors.New("document template failed")
)

// publicError carries the message of an internal error while matching
// only its public sentinel with errors.Is.
type publicError struct {
	sentinel error
	cause    error
}

func (e *publicError) Error() string { return e.cause.Error() }
func (e *publicError) Unwrap() error { return e.sentinel }

// errorMapping pairs internal sentinels with the public one they surface as.
type errorMapping struct {
	internal []error
	public   error
}

var assetErrors = []errorMapping{
	{internal: []error{assets.ErrStyleNotFound, assets.ErrInvalidAssetName}, public: ErrStyleNotFound},
	{internal: []error{assets.ErrTemplateSetNotFound, assets.ErrIncompleteTemplateSet}, public: ErrTemplateNotFound},
	{internal: []error{assets.ErrInvalidBasePath, assets.ErrPathTraversal}, public: ErrInvalidAssetPath},
}

var metaErrors = []errorMapping{
	{internal: []error{meta.ErrUnknownVersion}, public: ErrMetadataVersion},
	{
		internal: []error{meta.ErrTruncated, meta.ErrTrailingBytes, meta.ErrInvalidHidden, meta.ErrInvalidString, meta.ErrFieldTooLarge},
		public:   ErrMetadataTruncated,
	},
}

// mapError returns err surfaced as the first matching public sentinel,
// or err unchanged.
func mapError(err error, table []errorMapping) error {
	if err == nil {
		return nil
	}
	for _, m := range table {
		for _, target := range m.internal {
			if errors.Is(err, target) {
				return &publicError{sentinel: m.public, cause: err}
			}
		}
	}
	return err
}

func convertAssetError(err error) error { return mapError(err, assetErrors) }

// convertMetaError keeps the public message prefix so callers see which
// class of wire error occurred.
func convertMetaError(err error) error {
	mapped := mapError(err, metaErrors)
	var pe *publicError
	if errors.As(mapped, &pe) {
		return fmt.Errorf("%w: %v", pe.sentinel, pe.cause)
	}
	return mapped
}
