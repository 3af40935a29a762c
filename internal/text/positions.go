// Package text defines the byte-offset, span, and line/column types that
// pdflex uses to locate tokens and trivia and that cmd/pdfcst uses to
// render diagnostic locations.
package text

import "fmt"

// ByteOffset is a byte index into a UTF-8 source buffer.
type ByteOffset int

// IsValid reports whether the offset is non-negative.
func (o ByteOffset) IsValid() bool {
	return o >= 0
}

// Span is a half-open byte range [Start, End), used by pdflex to locate
// tokens and trivia within the source bytes it lexes.
type Span struct {
	Start ByteOffset // inclusive
	End   ByteOffset // exclusive
}

// IsValid reports whether the span bounds are well-formed.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.End >= s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Point is a line/column source location, used only for rendering
// diagnostics; the tree itself never stores or compares by Point.
type Point struct {
	Line   int // 0-based
	Column int // byte column
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// PointOf computes the 0-based line/column of off within src by scanning
// newlines. It is O(len(src)) and meant for occasional diagnostic rendering,
// not for hot-path tree construction.
func PointOf(src []byte, off ByteOffset) Point {
	line, col := 0, 0
	limit := int(off)
	if limit > len(src) {
		limit = len(src)
	}
	for i := 0; i < limit; i++ {
		if src[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return Point{Line: line, Column: col}
}
