package ast

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCoalesce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []Inline
		want  []Inline
	}{
		{
			name:  "empty input",
			input: nil,
			want:  []Inline{},
		},
		{
			name:  "merges adjacent text",
			input: []Inline{&Text{Value: "a"}, &Text{Value: "b"}, &Text{Value: "c"}},
			want:  []Inline{&Text{Value: "abc"}},
		},
		{
			name:  "drops empty text",
			input: []Inline{&Text{Value: ""}},
			want:  []Inline{},
		},
		{
			name: "keeps text split by strong",
			input: []Inline{
				&Text{Value: "a"},
				&Strong{Children: []Inline{&Text{Value: "b"}}},
				&Text{Value: "c"},
				&Text{Value: "d"},
			},
			want: []Inline{
				&Text{Value: "a"},
				&Strong{Children: []Inline{&Text{Value: "b"}}},
				&Text{Value: "cd"},
			},
		},
		{
			name: "recurses into containers",
			input: []Inline{
				&Emphasis{Children: []Inline{&Text{Value: "x"}, &Text{Value: "y"}}},
			},
			want: []Inline{
				&Emphasis{Children: []Inline{&Text{Value: "xy"}}},
			},
		},
		{
			name: "removes empty containers and joins surrounding text",
			input: []Inline{
				&Text{Value: "a"},
				&Strong{Children: []Inline{&Text{Value: ""}}},
				&Text{Value: "b"},
			},
			want: []Inline{&Text{Value: "ab"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Coalesce(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Coalesce() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCoalesce_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	input := []Inline{&Text{Value: "a"}, &Text{Value: "b"}}
	_ = Coalesce(input)

	if len(input) != 2 {
		t.Fatalf("input length changed to %d", len(input))
	}
	if input[0].(*Text).Value != "a" || input[1].(*Text).Value != "b" {
		t.Errorf("input values changed: %q, %q", input[0].(*Text).Value, input[1].(*Text).Value)
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	nodes := []Inline{
		&Text{Value: "Hello "},
		&Strong{Children: []Inline{
			&Text{Value: "big "},
			&Emphasis{Children: []Inline{&Text{Value: "world"}}},
		}},
		&Text{Value: "!"},
	}

	if got, want := PlainText(nodes), "Hello big world!"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestDocument_FirstHeading(t *testing.T) {
	t.Parallel()

	t.Run("nil document", func(t *testing.T) {
		t.Parallel()
		var d *Document
		if h := d.FirstHeading(); h != nil {
			t.Errorf("FirstHeading() = %v, want nil", h)
		}
	})

	t.Run("skips paragraphs", func(t *testing.T) {
		t.Parallel()
		want := &Heading{Level: 2, Content: []Inline{&Text{Value: "Second"}}}
		d := &Document{Blocks: []Block{
			&Paragraph{Content: []Inline{&Text{Value: "intro"}}},
			want,
			&Heading{Level: 1, Content: []Inline{&Text{Value: "Third"}}},
		}}
		if got := d.FirstHeading(); got != want {
			t.Errorf("FirstHeading() = %v, want %v", got, want)
		}
	})

	t.Run("no headings", func(t *testing.T) {
		t.Parallel()
		d := &Document{Blocks: []Block{&Paragraph{}}}
		if h := d.FirstHeading(); h != nil {
			t.Errorf("FirstHeading() = %v, want nil", h)
		}
	})
}

func TestDump(t *testing.T) {
	t.Parallel()

	d := &Document{Blocks: []Block{
		&Heading{Level: 1, Content: []Inline{&Text{Value: "Title"}}},
		&Paragraph{Content: []Inline{
			&Text{Value: "Hi "},
			&Strong{Children: []Inline{&Text{Value: "there"}}},
		}},
		&Blank{},
	}}

	got := Dump(d)
	for _, want := range []string{
		"Document (3 blocks)",
		"  Heading (level=1)",
		`    Text "Title"`,
		"  Paragraph",
		"    Strong",
		`      Text "there"`,
		"  Blank",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Dump() missing %q\ngot:\n%s", want, got)
		}
	}

	if got := Dump(nil); got != "Document <nil>\n" {
		t.Errorf("Dump(nil) = %q", got)
	}
}
