// Package source provides byte-offset bookkeeping for format descriptions.
// Spans are attached to tokens and AST nodes and are only ever rendered into
// diagnostic text; they never escape the public API in structural form.
package source

import (
	"fmt"
)

// Span identifies a byte range within a format description.
type Span struct {
	Start uint32 // inclusive
	End   uint32 // exclusive
}

// At builds a span covering the single byte at off.
func At(off uint32) Span {
	return Span{Start: off, End: off + 1}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	if s.End-s.Start <= 1 {
		return fmt.Sprintf("index %d", s.Start)
	}
	return fmt.Sprintf("bytes %d..%d", s.Start, s.End)
}

// Cover extends the span to include other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// ShrinkToStart collapses the span onto its first byte.
func (s Span) ShrinkToStart() Span {
	return Span{Start: s.Start, End: s.Start + 1}
}

// ShrinkToEnd collapses the span onto its last byte.
func (s Span) ShrinkToEnd() Span {
	if s.End > s.Start {
		return Span{Start: s.End - 1, End: s.End}
	}
	return s
}

// ShiftRight moves both endpoints forward by n bytes.
func (s Span) ShiftRight(n uint32) Span {
	return Span{Start: s.Start + n, End: s.End + n}
}
