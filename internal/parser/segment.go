package parser

import (
	"strings"

	gmtext "github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// RawBlock is a run of consecutive non-blank source lines.
type RawBlock struct {
	StartLine int      // zero-based index of the first line in the source
	Lines     []string // line content without line terminators
}

// Segment splits source into raw blocks separated by blank lines.
// Blank lines only separate; they never produce a block.
func Segment(source string) []RawBlock {
	reader := gmtext.NewReader([]byte(source))

	var (
		blocks  []RawBlock
		current *RawBlock
	)

	for lineNo := 0; ; lineNo++ {
		line, _ := reader.PeekLine()
		if line == nil {
			break
		}

		if util.IsBlank(line) {
			if current != nil {
				blocks = append(blocks, *current)
				current = nil
			}
		} else {
			if current == nil {
				current = &RawBlock{StartLine: lineNo}
			}
			current.Lines = append(current.Lines, strings.TrimRight(string(line), "\r\n"))
		}

		reader.AdvanceLine()
	}

	if current != nil {
		blocks = append(blocks, *current)
	}
	return blocks
}
