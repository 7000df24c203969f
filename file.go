package imd1

import (
	"fmt"

	"github.com/alnah/go-imd1/internal/fileutil"
)

// outputFileMode is the permission of written output files.
const outputFileMode = 0o644

// ConvertFileToString reads the Markdown file at src and converts it.
// A UTF-8 or UTF-16 byte order mark is honored and removed.
func (c *Converter) ConvertFileToString(src string, format Format) (*Result, error) {
	source, err := fileutil.ReadText(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadMarkdown, src, err)
	}
	return c.Convert(source, format)
}

// ConvertToFile converts source and writes the output to dst atomically.
// The metadata is returned; it is never written into the output.
func (c *Converter) ConvertToFile(source, dst string, format Format) (Metadata, error) {
	res, err := c.Convert(source, format)
	if err != nil {
		return DefaultMetadata(), err
	}
	if err := fileutil.WriteFileAtomic(dst, []byte(res.Output), outputFileMode); err != nil {
		return DefaultMetadata(), fmt.Errorf("%w: %s: %v", ErrWriteOutput, dst, err)
	}
	return res.Metadata, nil
}

// ConvertFile converts the Markdown file at src and writes the output to
// dst.
func (c *Converter) ConvertFile(src, dst string, format Format) (Metadata, error) {
	source, err := fileutil.ReadText(src)
	if err != nil {
		return DefaultMetadata(), fmt.Errorf("%w: %s: %v", ErrReadMarkdown, src, err)
	}
	return c.ConvertToFile(source, dst, format)
}

// WriteMetadataFile encodes m with version v and writes it to dst.
func WriteMetadataFile(dst string, m Metadata, v MetadataVersion) error {
	b, err := EncodeMetadata(m, v)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(dst, b, outputFileMode); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, dst, err)
	}
	return nil
}

// ConvertFile converts the file at src to dst with default settings.
func ConvertFile(src, dst string, format Format) (Metadata, error) {
	c, err := NewConverter()
	if err != nil {
		return DefaultMetadata(), err
	}
	return c.ConvertFile(src, dst, format)
}

// ConvertFileToString converts the file at src with default settings.
func ConvertFileToString(src string, format Format) (*Result, error) {
	c, err := NewConverter()
	if err != nil {
		return nil, err
	}
	return c.ConvertFileToString(src, format)
}

// ConvertToFile converts source to dst with default settings.
func ConvertToFile(source, dst string, format Format) (Metadata, error) {
	c, err := NewConverter()
	if err != nil {
		return DefaultMetadata(), err
	}
	return c.ConvertToFile(source, dst, format)
}
