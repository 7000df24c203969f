package meta

import (
	"errors"
	"strings"
	"testing"
)

func TestFromBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lines  []string
		want   Metadata
		wantOK bool
	}{
		{
			name:   "empty block",
			lines:  nil,
			want:   Default(),
			wantOK: false,
		},
		{
			name:   "author and copyright",
			lines:  []string{"author: Jane", "copyright: 2024"},
			want:   Metadata{Author: StringPtr("Jane"), Copyright: StringPtr("2024")},
			wantOK: true,
		},
		{
			name:   "hidden true case-insensitive",
			lines:  []string{"Hidden: TRUE"},
			want:   Metadata{Hidden: true},
			wantOK: true,
		},
		{
			name:   "hidden false",
			lines:  []string{"hidden: false"},
			want:   Metadata{},
			wantOK: true,
		},
		{
			name:   "hidden malformed token recovers to false",
			lines:  []string{"hidden: maybe"},
			want:   Metadata{},
			wantOK: true,
		},
		{
			name:   "unknown keys ignored",
			lines:  []string{"title: Notes", "author: Jane"},
			want:   Metadata{Author: StringPtr("Jane")},
			wantOK: true,
		},
		{
			name:   "only unknown keys is not metadata",
			lines:  []string{"title: Notes"},
			want:   Default(),
			wantOK: false,
		},
		{
			name:   "non key/value line rejects block",
			lines:  []string{"author: Jane", "Some prose here"},
			want:   Default(),
			wantOK: false,
		},
		{
			name:   "value trimmed and kept verbatim",
			lines:  []string{"author:   Jane: the *first*  "},
			want:   Metadata{Author: StringPtr("Jane: the *first*")},
			wantOK: true,
		},
		{
			name:   "present empty value differs from absent",
			lines:  []string{"author:"},
			want:   Metadata{Author: StringPtr("")},
			wantOK: true,
		},
		{
			name:   "last duplicate wins",
			lines:  []string{"author: A", "author: B"},
			want:   Metadata{Author: StringPtr("B")},
			wantOK: true,
		},
		{
			name:   "utf-8 values",
			lines:  []string{"author: Valentin-Ioan Vintilă", "copyright: © 2024"},
			want:   Metadata{Author: StringPtr("Valentin-Ioan Vintilă"), Copyright: StringPtr("© 2024")},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := FromBlock(tt.lines)
			if ok != tt.wantOK {
				t.Fatalf("FromBlock() ok = %v, want %v", ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FromBlock() =\n%v\nwant\n%v", got, tt.want)
			}
		})
	}
}

func TestFromFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		want     Metadata
		wantBody string
		wantOK   bool
	}{
		{
			name:     "no front matter",
			source:   "# Title\n",
			want:     Default(),
			wantBody: "# Title\n",
			wantOK:   false,
		},
		{
			name:     "yaml front matter",
			source:   "---\nauthor: Jane\ncopyright: 2024\nhidden: true\n---\nBody text\n",
			want:     Metadata{Hidden: true, Author: StringPtr("Jane"), Copyright: StringPtr("2024")},
			wantBody: "Body text\n",
			wantOK:   true,
		},
		{
			name:     "toml front matter",
			source:   "+++\nauthor = \"Jane\"\n+++\nBody\n",
			want:     Metadata{Author: StringPtr("Jane")},
			wantBody: "Body\n",
			wantOK:   true,
		},
		{
			name:     "unterminated front matter is body",
			source:   "---\nnot closed\n",
			want:     Default(),
			wantBody: "---\nnot closed\n",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, body, ok := FromFrontMatter(tt.source)
			if ok != tt.wantOK {
				t.Fatalf("FromFrontMatter() ok = %v, want %v", ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FromFrontMatter() =\n%v\nwant\n%v", got, tt.want)
			}
			if strings.TrimSpace(body) != strings.TrimSpace(tt.wantBody) {
				t.Errorf("FromFrontMatter() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestHasFrontMatter(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"---\na: b\n---\n": true,
		"+++\n":            true,
		"--- \n":           true,
		"----\n":           false,
		"# ---\n":          false,
		"":                 false,
	}
	for source, want := range tests {
		if got := HasFrontMatter(source); got != want {
			t.Errorf("HasFrontMatter(%q) = %v, want %v", source, got, want)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		meta    Metadata
		version Version
		want    Metadata
	}{
		{
			name:    "v2 full",
			meta:    Metadata{Hidden: true, Author: StringPtr("Jane"), Copyright: StringPtr("2024")},
			version: V2,
			want:    Metadata{Hidden: true, Author: StringPtr("Jane"), Copyright: StringPtr("2024")},
		},
		{
			name:    "v2 defaults",
			meta:    Default(),
			version: V2,
			want:    Default(),
		},
		{
			name:    "v1 drops hidden",
			meta:    Metadata{Hidden: true, Author: StringPtr("Jane")},
			version: V1,
			want:    Metadata{Author: StringPtr("Jane")},
		},
		{
			name:    "empty string collapses to absent",
			meta:    Metadata{Author: StringPtr("")},
			version: V2,
			want:    Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, err := Encode(tt.meta, tt.version)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if len(buf) != EncodedLen(tt.meta, tt.version) {
				t.Errorf("len(Encode()) = %d, EncodedLen() = %d", len(buf), EncodedLen(tt.meta, tt.version))
			}

			got, v, err := Decode(buf)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if v != tt.version {
				t.Errorf("Decode() version = %v, want %v", v, tt.version)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Decode() =\n%v\nwant\n%v", got, tt.want)
			}
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	t.Parallel()

	m := Metadata{Hidden: true, Author: StringPtr("Al"), Copyright: StringPtr("C")}

	v2, err := Encode(m, V2)
	if err != nil {
		t.Fatalf("Encode(V2) error = %v", err)
	}
	wantV2 := []byte{2, 1, 2, 0, 0, 0, 'A', 'l', 1, 0, 0, 0, 'C'}
	if string(v2) != string(wantV2) {
		t.Errorf("Encode(V2) = %v, want %v", v2, wantV2)
	}

	v1, err := Encode(m, V1)
	if err != nil {
		t.Fatalf("Encode(V1) error = %v", err)
	}
	wantV1 := []byte{1, 2, 0, 0, 0, 'A', 'l', 1, 0, 0, 0, 'C'}
	if string(v1) != string(wantV1) {
		t.Errorf("Encode(V1) = %v, want %v", v1, wantV1)
	}
}

func TestEncode_UnknownVersion(t *testing.T) {
	t.Parallel()

	if _, err := Encode(Default(), Version(9)); !errors.Is(err, ErrUnknownVersion) {
		t.Errorf("Encode() error = %v, want ErrUnknownVersion", err)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		buf     []byte
		wantErr error
	}{
		{name: "empty", buf: nil, wantErr: ErrTruncated},
		{name: "unknown version", buf: []byte{7}, wantErr: ErrUnknownVersion},
		{name: "unversioned layout", buf: []byte{0, 0, 0, 0, 0, 0, 0, 0, 0}, wantErr: ErrUnknownVersion},
		{name: "v2 missing hidden", buf: []byte{2}, wantErr: ErrTruncated},
		{name: "v2 bad hidden", buf: []byte{2, 5, 0, 0, 0, 0, 0, 0, 0, 0}, wantErr: ErrInvalidHidden},
		{name: "short length", buf: []byte{1, 0, 0}, wantErr: ErrTruncated},
		{name: "length past end", buf: []byte{1, 9, 0, 0, 0, 'a'}, wantErr: ErrTruncated},
		{name: "missing copyright", buf: []byte{1, 0, 0, 0, 0}, wantErr: ErrTruncated},
		{name: "trailing bytes", buf: []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 'x'}, wantErr: ErrTrailingBytes},
		{name: "invalid utf-8", buf: []byte{1, 1, 0, 0, 0, 0xff, 0, 0, 0, 0}, wantErr: ErrInvalidString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Decode(tt.buf)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode(%v) error = %v, want %v", tt.buf, err, tt.wantErr)
			}
		})
	}
}

func TestDecode_UnversionedHiddenReadsAsV1(t *testing.T) {
	t.Parallel()

	// hidden=1, author "Jo", no copyright, without a version byte.
	buf := []byte{1, 2, 0, 0, 0, 'J', 'o', 0, 0, 0, 0}
	m, v, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if v != V1 {
		t.Errorf("version = %v, want V1", v)
	}
	if m.Hidden {
		t.Error("Hidden = true, want false: V1 carries no hidden flag")
	}
	if m.Author == nil || *m.Author != "Jo" {
		t.Errorf("Author = %v, want Jo", m.Author)
	}
}

func TestMetadata_String(t *testing.T) {
	t.Parallel()

	got := Metadata{Author: StringPtr("Jane")}.String()
	for _, want := range []string{"Hidden: false", `Author: "Jane"`, "Copyright: <absent>"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}
