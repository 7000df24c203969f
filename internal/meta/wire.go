package meta

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// Version tags the binary layout of an encoded Metadata record.
type Version uint8

// Supported wire versions.
//
//	V1: [1] u32 author_len, author, u32 copyright_len, copyright
//	V2: [2] hidden(0|1), u32 author_len, author, u32 copyright_len, copyright
//
// Integers are little-endian. A zero length decodes as an absent field.
const (
	V1 Version = 1
	V2 Version = 2

	CurrentVersion = V2
)

const lengthSize = 4

// Sentinel errors for wire decoding and encoding.
var (
	ErrUnknownVersion = errors.New("unknown metadata wire version")
	ErrTruncated      = errors.New("metadata buffer truncated")
	ErrTrailingBytes  = errors.New("metadata buffer has trailing bytes")
	ErrInvalidHidden  = errors.New("invalid hidden flag byte")
	ErrInvalidString  = errors.New("metadata string is not valid UTF-8")
	ErrFieldTooLarge  = errors.New("metadata field exceeds 4 GiB")
)

// Valid reports whether v is a supported wire version.
func (v Version) Valid() bool {
	return v == V1 || v == V2
}

func (v Version) String() string {
	return fmt.Sprintf("v%d", uint8(v))
}

// Encode serializes m using layout v.
func Encode(m Metadata, v Version) ([]byte, error) {
	return AppendEncode(nil, m, v)
}

// EncodedLen returns the number of bytes Encode produces for m and v.
func EncodedLen(m Metadata, v Version) int {
	n := 1 + 2*lengthSize + len(m.AuthorOr("")) + len(m.CopyrightOr(""))
	if v == V2 {
		n++
	}
	return n
}

// AppendEncode appends the encoding of m to dst.
// V1 drops the hidden flag; callers choosing V1 accept that loss.
func AppendEncode(dst []byte, m Metadata, v Version) ([]byte, error) {
	if !v.Valid() {
		return dst, fmt.Errorf("%w: %d", ErrUnknownVersion, uint8(v))
	}

	author := m.AuthorOr("")
	copyright := m.CopyrightOr("")
	if uint64(len(author)) > math.MaxUint32 || uint64(len(copyright)) > math.MaxUint32 {
		return dst, ErrFieldTooLarge
	}

	dst = append(dst, byte(v))
	if v == V2 {
		var hidden byte
		if m.Hidden {
			hidden = 1
		}
		dst = append(dst, hidden)
	}
	dst = appendString(dst, author)
	dst = appendString(dst, copyright)
	return dst, nil
}

func appendString(dst []byte, s string) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(s)))
	return append(dst, s...)
}

// Decode parses a buffer produced by Encode, whatever its version.
// It is the single decoding routine for every caller.
//
// The unversioned layout, which starts directly with the hidden byte, is
// not supported. Such a buffer with hidden 0 fails with
// ErrUnknownVersion. With hidden 1 it reads as V1 and the flag is lost.
func Decode(b []byte) (Metadata, Version, error) {
	if len(b) == 0 {
		return Default(), 0, fmt.Errorf("%w: missing version byte", ErrTruncated)
	}

	v := Version(b[0])
	if !v.Valid() {
		return Default(), 0, fmt.Errorf("%w: %d", ErrUnknownVersion, b[0])
	}

	d := decoder{buf: b[1:]}
	m := Default()

	if v == V2 {
		flag, err := d.byte("hidden")
		if err != nil {
			return Default(), v, err
		}
		switch flag {
		case 0:
		case 1:
			m.Hidden = true
		default:
			return Default(), v, fmt.Errorf("%w: %d", ErrInvalidHidden, flag)
		}
	}

	var err error
	if m.Author, err = d.optionalString("author"); err != nil {
		return Default(), v, err
	}
	if m.Copyright, err = d.optionalString("copyright"); err != nil {
		return Default(), v, err
	}
	if len(d.buf) != 0 {
		return Default(), v, fmt.Errorf("%w: %d", ErrTrailingBytes, len(d.buf))
	}

	return m, v, nil
}

type decoder struct {
	buf []byte
}

func (d *decoder) byte(field string) (byte, error) {
	if len(d.buf) < 1 {
		return 0, fmt.Errorf("%w: reading %s", ErrTruncated, field)
	}
	c := d.buf[0]
	d.buf = d.buf[1:]
	return c, nil
}

func (d *decoder) optionalString(field string) (*string, error) {
	if len(d.buf) < lengthSize {
		return nil, fmt.Errorf("%w: reading %s length", ErrTruncated, field)
	}
	n := binary.LittleEndian.Uint32(d.buf)
	d.buf = d.buf[lengthSize:]

	if uint64(n) > uint64(len(d.buf)) {
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d left", ErrTruncated, field, n, len(d.buf))
	}
	raw := d.buf[:n]
	d.buf = d.buf[n:]

	if n == 0 {
		return nil, nil
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidString, field)
	}
	return StringPtr(string(raw)), nil
}
