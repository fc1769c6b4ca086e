// Copyright (C) 2024 The vjson Authors. All Rights Reserved.

package vjson

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location
// in source text. Lines and columns are both 1-based; the column resets
// to 1 after each newline and advances by one per character otherwise.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column in line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}
