package lexer

import (
	"tempus/internal/source"
)

// Cursor is a byte position within a format description.
type Cursor struct {
	input []byte
	off   uint32
}

// NewCursor creates a cursor over the provided description bytes.
// Descriptions longer than 4 GiB are not supported.
func NewCursor(input []byte) Cursor {
	return Cursor{input: input}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return int(c.off) >= len(c.input)
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.input[c.off]
}

// Peek2 returns the current and following byte when both exist.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if int(c.off)+1 >= len(c.input) {
		return 0, 0, false
	}
	return c.input[c.off], c.input[c.off+1], true
}

// Bump advances past the current byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.input[c.off]
	c.off++
	return b
}

// Eat consumes the next byte when it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.input[c.off] == b {
		c.off++
		return true
	}
	return false
}

// Mark remembers a cursor position so a Span can be produced later.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom builds the span from a mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.off}
}

// Text returns the bytes between a mark and the current position.
func (c *Cursor) Text(m Mark) []byte {
	return c.input[m:c.off]
}
