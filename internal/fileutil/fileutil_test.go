package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-imd1/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestDecodeText - Byte order mark handling
// ---------------------------------------------------------------------------

func TestDecodeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "plain utf-8",
			input: []byte("# Title"),
			want:  "# Title",
		},
		{
			name:  "utf-8 bom stripped",
			input: []byte("\xef\xbb\xbf# Title"),
			want:  "# Title",
		},
		{
			name:  "utf-16le bom decoded",
			input: []byte{0xff, 0xfe, '#', 0, ' ', 0, 'A', 0},
			want:  "# A",
		},
		{
			name:  "utf-16be bom decoded",
			input: []byte{0xfe, 0xff, 0, '#', 0, ' ', 0, 'A'},
			want:  "# A",
		},
		{
			name:  "invalid utf-8 passes through",
			input: []byte{'a', 0xff, 'b'},
			want:  "a\xffb",
		},
		{
			name:  "empty",
			input: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.DecodeText(tt.input)
			if err != nil {
				t.Fatalf("DecodeText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbfHello"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	got, err := fileutil.ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if got != "Hello" {
		t.Errorf("ReadText() = %q, want %q", got, "Hello")
	}

	if _, err := fileutil.ReadText(filepath.Join(dir, "missing.md")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadText(missing) error = %v, want os.ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.html")
		if err := fileutil.WriteFileAtomic(path, []byte("<p>x</p>"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read output: %v", err)
		}
		if string(data) != "<p>x</p>" {
			t.Errorf("file content = %q", data)
		}
	})

	t.Run("replaces existing file and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.tex")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("file content = %q, want %q", data, "new")
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})

	t.Run("applies permissions", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not enforced on windows")
		}
		path := filepath.Join(t.TempDir(), "out.meta")
		if err := fileutil.WriteFileAtomic(path, []byte{2, 0}, 0o600); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("mode = %v, want 0600", info.Mode().Perm())
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.html")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Error("WriteFileAtomic() expected error for missing directory")
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "valid", extension: "html", wantErr: nil},
		{name: "empty", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "slash", extension: "a/b", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash", extension: "a\\b", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte", extension: "a\x00", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path      string
		extension string
		want      string
	}{
		{path: "doc.md", extension: ".html", want: "doc.html"},
		{path: "dir/doc.markdown", extension: "tex", want: "dir/doc.tex"},
		{path: "noext", extension: "meta", want: "noext.meta"},
	}

	for _, tt := range tests {
		got, err := fileutil.ReplaceExtension(tt.path, tt.extension)
		if err != nil {
			t.Errorf("ReplaceExtension(%q, %q) error = %v", tt.path, tt.extension, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReplaceExtension(%q, %q) = %q, want %q", tt.path, tt.extension, got, tt.want)
		}
	}

	if _, err := fileutil.ReplaceExtension("doc.md", ""); !errors.Is(err, fileutil.ErrExtensionEmpty) {
		t.Errorf("ReplaceExtension(empty) error = %v, want ErrExtensionEmpty", err)
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular file detection
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsCSS / TestIsURL - Style input classification
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"technical":           false,
		"./custom.css":        true,
		"../shared/style.css": true,
		"/absolute/path.css":  true,
		"C:\\windows\\a.css":  true,
		"my-style":            false,
		"":                    false,
		"name.with.dots":      false,
	}
	for input, want := range tests {
		if got := fileutil.IsFilePath(input); got != want {
			t.Errorf("IsFilePath(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"technical":            false,
		"./custom.css":         false,
		"body { color: red; }": true,
		"body {":               true,
		"":                     false,
	}
	for input, want := range tests {
		if got := fileutil.IsCSS(input); got != want {
			t.Errorf("IsCSS(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"http://example.com/a.css": true,
		"https://example.com":      true,
		"ftp://example.com":        false,
		"./local.css":              false,
	}
	for input, want := range tests {
		if got := fileutil.IsURL(input); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", input, got, want)
		}
	}
}
