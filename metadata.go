package imd1

import "github.com/alnah/go-imd1/internal/meta"

// Metadata is the document metadata extracted during conversion. Author
// and Copyright are nil when the document does not set them.
type Metadata = meta.Metadata

// MetadataVersion tags the binary layout of encoded metadata.
type MetadataVersion = meta.Version

// Metadata wire versions.
//
//	MetadataV1: [1] u32 author_len, author, u32 copyright_len, copyright
//	MetadataV2: [2] hidden(0|1), u32 author_len, author, u32 copyright_len, copyright
//
// Integers are little-endian. An empty string encodes as length 0 and
// decodes as absent.
const (
	MetadataV1 = meta.V1
	MetadataV2 = meta.V2

	CurrentMetadataVersion = meta.CurrentVersion
)

// DefaultMetadata returns the metadata of a document without a metadata
// block: not hidden, no author, no copyright.
func DefaultMetadata() Metadata {
	return meta.Default()
}

// StringPtr returns a pointer to s, for building Metadata values.
func StringPtr(s string) *string {
	return meta.StringPtr(s)
}

// EncodeMetadata serializes m with layout v.
func EncodeMetadata(m Metadata, v MetadataVersion) ([]byte, error) {
	b, err := meta.Encode(m, v)
	if err != nil {
		return nil, convertMetaError(err)
	}
	return b, nil
}

// DecodeMetadata parses a buffer produced by EncodeMetadata or
// Export.Meta, whatever its version.
func DecodeMetadata(b []byte) (Metadata, MetadataVersion, error) {
	m, v, err := meta.Decode(b)
	if err != nil {
		return DefaultMetadata(), v, convertMetaError(err)
	}
	return m, v, nil
}
