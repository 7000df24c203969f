package assets

import (
	"fmt"
	"strings"
)

// MaxAssetNameLength bounds style and template set names.
const MaxAssetNameLength = 64

// ValidateAssetName checks that an asset name is safe for use as a file
// or directory name: not empty, not too long, and free of path
// separators and dots.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidAssetName, MaxAssetNameLength)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
