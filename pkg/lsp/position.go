package lsp

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// lineIndex converts between byte offsets and LSP positions, whose
// characters count UTF-16 code units.
type lineIndex struct {
	text   string
	starts []int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}

	for i := range len(text) {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &lineIndex{text: text, starts: starts}
}

func (li *lineIndex) position(offset int) protocol.Position {
	offset = min(max(offset, 0), len(li.text))

	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1

	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(utf16Len(li.text[li.starts[line]:offset])),
	}
}

func (li *lineIndex) offset(pos protocol.Position) int {
	line := int(pos.Line)
	if line >= len(li.starts) {
		return len(li.text)
	}

	end := len(li.text)
	if line+1 < len(li.starts) {
		end = li.starts[line+1] - 1
	}

	off := li.starts[line]
	units := int(pos.Character)

	for off < end && units > 0 {
		r, size := utf8.DecodeRuneInString(li.text[off:])
		units -= utf16.RuneLen(r)
		off += size
	}

	return off
}

func (li *lineIndex) rangeOf(span node.Span) protocol.Range {
	return protocol.Range{
		Start: li.position(int(span.StartOffset)),
		End:   li.position(int(span.EndOffset)),
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}

	return n
}
